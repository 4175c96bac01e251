package usecase

import (
	"context"

	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/domain"
	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

// Dirección de un traslado respecto de la base consultada.
const (
	DirectionOutgoing = "outgoing"
	DirectionIncoming = "incoming"
)

// TransferUseCase consulta de traslados (solo lectura; no hay transiciones de estado).
type TransferUseCase struct {
	repo repository.TransferRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(repo repository.TransferRepository) *TransferUseCase {
	return &TransferUseCase{repo: repo}
}

// ListByBase devuelve los traslados que salen o llegan a la base.
func (uc *TransferUseCase) ListByBase(ctx context.Context, session entity.SessionContext, baseID string) ([]dto.TransferResponse, error) {
	if baseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !session.CanViewBase(baseID) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByBase(ctx, baseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		dir := DirectionIncoming
		if t.FromBase == baseID {
			dir = DirectionOutgoing
		}
		out = append(out, dto.TransferResponse{
			ID:          t.ID,
			AssetID:     t.AssetID,
			AssetName:   t.AssetName,
			Quantity:    t.Quantity,
			FromBase:    t.FromBase,
			ToBase:      t.ToBase,
			Date:        t.Date,
			Status:      t.Status,
			InitiatedBy: t.InitiatedBy,
			Direction:   dir,
		})
	}
	return out, nil
}
