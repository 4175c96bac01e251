package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

const selectAssets = `
	SELECT id, name, category, quantity, base_id, status, COALESCE(assigned_to, '')
	FROM assets`

// AssetRepo inventario por base sobre PostgreSQL.
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador.
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

// ListAll lista los activos de todas las bases.
func (r *AssetRepo) ListAll(ctx context.Context) ([]*entity.Asset, error) {
	rows, err := r.q.Query(ctx, selectAssets+` ORDER BY seq`)
	if err != nil {
		return nil, wrapQueryErr("list assets", err)
	}
	return scanAssets(rows)
}

// ListByBase lista los activos de una base.
func (r *AssetRepo) ListByBase(ctx context.Context, baseID string) ([]*entity.Asset, error) {
	rows, err := r.q.Query(ctx, selectAssets+` WHERE base_id = $1 ORDER BY seq`, baseID)
	if err != nil {
		return nil, wrapQueryErr("list assets by base", err)
	}
	return scanAssets(rows)
}

func scanAssets(rows pgx.Rows) ([]*entity.Asset, error) {
	defer rows.Close()
	list := make([]*entity.Asset, 0)
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.Quantity, &a.Base, &a.Status, &a.AssignedTo); err != nil {
			return nil, wrapQueryErr("scan asset", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
