package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/domain"
	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

const filterAll = "all"

// AssetUseCase listado de inventario por base (página Assets).
type AssetUseCase struct {
	repo repository.AssetRepository
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo}
}

// List devuelve los activos de la base filtrados por categoría, estado y texto.
// BaseID "all" une el inventario de todas las bases (solo commander).
func (uc *AssetUseCase) List(ctx context.Context, session entity.SessionContext, f dto.AssetFilter) ([]dto.AssetResponse, error) {
	if f.BaseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !isAll(f.Category) && !entity.IsValidCategory(f.Category) {
		return nil, domain.ErrInvalidInput
	}
	if !isAll(f.Status) && !entity.IsValidAssetStatus(f.Status) {
		return nil, domain.ErrInvalidInput
	}
	if !session.CanViewBase(f.BaseID) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.listAssets(ctx, f.BaseID)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		if !isAll(f.Category) && a.Category != f.Category {
			continue
		}
		if !isAll(f.Status) && a.Status != f.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(a.Name), search) {
			continue
		}
		out = append(out, dto.AssetResponse{
			ID:         a.ID,
			Name:       a.Name,
			Category:   a.Category,
			Quantity:   a.Quantity,
			Base:       a.Base,
			Status:     a.Status,
			AssignedTo: a.AssignedTo,
		})
	}
	return out, nil
}

func (uc *AssetUseCase) listAssets(ctx context.Context, baseID string) ([]*entity.Asset, error) {
	if baseID == entity.AllBases {
		return uc.repo.ListAll(ctx)
	}
	return uc.repo.ListByBase(ctx, baseID)
}

func isAll(v string) bool {
	return v == "" || v == filterAll
}
