package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

var _ repository.UserRepository = (*OperatorRepo)(nil)

// OperatorRepo lee el operador de demostración (tabla operators, fila con is_demo).
type OperatorRepo struct {
	q Querier
}

// NewOperatorRepository construye el adaptador.
func NewOperatorRepository(q Querier) *OperatorRepo {
	return &OperatorRepo{q: q}
}

// GetDemoUser devuelve (nil, nil) si no hay operador de demostración.
func (r *OperatorRepo) GetDemoUser(ctx context.Context) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx,
		`SELECT id, name, role, base_id FROM operators WHERE is_demo ORDER BY id LIMIT 1`,
	).Scan(&u.ID, &u.Name, &u.Role, &u.Base)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapQueryErr("get demo operator", err)
	}
	return &u, nil
}
