package repository

import (
	"context"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
)

// AssetRepository define el puerto de lectura del inventario por base.
type AssetRepository interface {
	ListAll(ctx context.Context) ([]*entity.Asset, error)
	ListByBase(ctx context.Context, baseID string) ([]*entity.Asset, error)
}
