package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

var _ repository.AssetMovementRepository = (*AssetMovementRepo)(nil)

// El orden por seq reproduce el orden de inserción del libro.
const selectMovements = `
	SELECT id, asset_id, asset_name, category, type, quantity, base_id,
	       to_char(date, 'YYYY-MM-DD'), COALESCE(related_transfer_id, '')
	FROM asset_movements`

// AssetMovementRepo libro de movimientos sobre PostgreSQL (solo lectura; usable con pool o tx).
type AssetMovementRepo struct {
	q Querier
}

// NewAssetMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssetMovementRepository(q Querier) *AssetMovementRepo {
	return &AssetMovementRepo{q: q}
}

// ListAll devuelve el libro completo.
func (r *AssetMovementRepo) ListAll(ctx context.Context) ([]entity.AssetMovement, error) {
	rows, err := r.q.Query(ctx, selectMovements+` ORDER BY seq`)
	if err != nil {
		return nil, wrapQueryErr("list movements", err)
	}
	return scanMovements(rows)
}

// ListByBase devuelve los movimientos registrados contra una base.
func (r *AssetMovementRepo) ListByBase(ctx context.Context, baseID string) ([]entity.AssetMovement, error) {
	rows, err := r.q.Query(ctx, selectMovements+` WHERE base_id = $1 ORDER BY seq`, baseID)
	if err != nil {
		return nil, wrapQueryErr("list movements by base", err)
	}
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]entity.AssetMovement, error) {
	defer rows.Close()
	list := make([]entity.AssetMovement, 0)
	for rows.Next() {
		var m entity.AssetMovement
		if err := rows.Scan(&m.ID, &m.AssetID, &m.AssetName, &m.Category, &m.Type,
			&m.Quantity, &m.Base, &m.Date, &m.RelatedTransferID); err != nil {
			return nil, wrapQueryErr("scan movement", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
