package repository

import (
	"context"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
)

// AssetMovementRepository es el proveedor del libro de movimientos (solo lectura).
// Las implementaciones devuelven los movimientos en orden de inserción.
type AssetMovementRepository interface {
	ListAll(ctx context.Context) ([]entity.AssetMovement, error)
	ListByBase(ctx context.Context, baseID string) ([]entity.AssetMovement, error)
}
