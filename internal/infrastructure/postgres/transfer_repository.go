package postgres

import (
	"context"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo traslados sobre PostgreSQL.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador.
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// ListByBase lista los traslados con origen o destino en la base.
func (r *TransferRepo) ListByBase(ctx context.Context, baseID string) ([]*entity.Transfer, error) {
	query := `
		SELECT id, asset_id, asset_name, quantity, from_base_id, to_base_id,
		       to_char(date, 'YYYY-MM-DD'), status, initiated_by
		FROM transfers
		WHERE from_base_id = $1 OR to_base_id = $1
		ORDER BY date, id`
	rows, err := r.q.Query(ctx, query, baseID)
	if err != nil {
		return nil, wrapQueryErr("list transfers", err)
	}
	defer rows.Close()
	list := make([]*entity.Transfer, 0)
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.AssetID, &t.AssetName, &t.Quantity, &t.FromBase, &t.ToBase,
			&t.Date, &t.Status, &t.InitiatedBy); err != nil {
			return nil, wrapQueryErr("scan transfer", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
