package repository

import (
	"context"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
)

// UserRepository provee el operador preconfigurado de la demo.
type UserRepository interface {
	GetDemoUser(ctx context.Context) (*entity.User, error)
}
