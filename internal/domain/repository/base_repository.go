package repository

import (
	"context"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
)

// BaseRepository define el puerto de lectura del catálogo de bases.
type BaseRepository interface {
	List(ctx context.Context) ([]*entity.Base, error)
	// GetByID devuelve (nil, nil) si la base no existe.
	GetByID(ctx context.Context, id string) (*entity.Base, error)
}
