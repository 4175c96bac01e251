package repository

import (
	"context"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
)

// TransferRepository define el puerto de lectura de traslados.
type TransferRepository interface {
	// ListByBase devuelve los traslados que salen o llegan a la base.
	ListByBase(ctx context.Context, baseID string) ([]*entity.Transfer, error)
}
