package usecase

import (
	"context"

	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/domain"
	"github.com/jhoicas/asset-balance-api/internal/domain/balance"
	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

// MovementUseCase devuelve el libro filtrado con el mismo predicado que usa el balance.
type MovementUseCase struct {
	repo repository.AssetMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.AssetMovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List devuelve los movimientos de la base en [StartDate, EndDate], en orden de inserción.
// BaseID "all" recorre el libro completo (solo commander).
func (uc *MovementUseCase) List(ctx context.Context, session entity.SessionContext, q dto.MovementQuery) ([]dto.AssetMovementResponse, error) {
	if q.BaseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !isAll(q.Category) && !entity.IsValidCategory(q.Category) {
		return nil, domain.ErrInvalidInput
	}
	if err := balance.ValidateRange(q.StartDate, q.EndDate); err != nil {
		return nil, err
	}
	if !session.CanViewBase(q.BaseID) {
		return nil, domain.ErrForbidden
	}
	var selected []entity.AssetMovement
	if q.BaseID == entity.AllBases {
		ledger, err := uc.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		selected = balance.FilterByRange(ledger, q.StartDate, q.EndDate)
	} else {
		ledger, err := uc.repo.ListByBase(ctx, q.BaseID)
		if err != nil {
			return nil, err
		}
		selected = balance.FilterByBaseAndRange(ledger, q.BaseID, q.StartDate, q.EndDate)
	}
	selected = balance.FilterByCategory(selected, q.Category)
	out := make([]dto.AssetMovementResponse, 0, len(selected))
	for _, m := range selected {
		out = append(out, dto.AssetMovementResponse{
			ID:                m.ID,
			AssetID:           m.AssetID,
			AssetName:         m.AssetName,
			Category:          m.Category,
			Type:              m.Type,
			Quantity:          m.Quantity,
			Base:              m.Base,
			Date:              m.Date,
			RelatedTransferID: m.RelatedTransferID,
		})
	}
	return out, nil
}
