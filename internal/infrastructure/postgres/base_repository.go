package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

var _ repository.BaseRepository = (*BaseRepo)(nil)

// BaseRepo catálogo de bases sobre PostgreSQL.
type BaseRepo struct {
	q Querier
}

// NewBaseRepository construye el adaptador.
func NewBaseRepository(q Querier) *BaseRepo {
	return &BaseRepo{q: q}
}

// List devuelve todas las bases ordenadas por ID.
func (r *BaseRepo) List(ctx context.Context) ([]*entity.Base, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, location FROM bases ORDER BY id`)
	if err != nil {
		return nil, wrapQueryErr("list bases", err)
	}
	defer rows.Close()
	list := make([]*entity.Base, 0)
	for rows.Next() {
		var b entity.Base
		if err := rows.Scan(&b.ID, &b.Name, &b.Location); err != nil {
			return nil, wrapQueryErr("scan base", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// GetByID obtiene una base por ID.
func (r *BaseRepo) GetByID(ctx context.Context, id string) (*entity.Base, error) {
	var b entity.Base
	err := r.q.QueryRow(ctx, `SELECT id, name, location FROM bases WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapQueryErr("get base", err)
	}
	return &b, nil
}
