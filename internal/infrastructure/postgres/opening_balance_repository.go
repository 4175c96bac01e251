package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

var _ repository.OpeningBalanceRepository = (*OpeningBalanceRepo)(nil)

// OpeningBalanceRepo saldos de apertura por base (tabla opening_balances).
type OpeningBalanceRepo struct {
	q   Querier
	def int64
}

// NewOpeningBalanceRepository construye el adaptador; def se usa cuando la base no tiene fila.
func NewOpeningBalanceRepository(q Querier, def int64) *OpeningBalanceRepo {
	return &OpeningBalanceRepo{q: q, def: def}
}

// GetOpeningBalance obtiene el saldo de apertura de la base.
func (r *OpeningBalanceRepo) GetOpeningBalance(ctx context.Context, baseID string) (int64, error) {
	var v int64
	err := r.q.QueryRow(ctx, `SELECT quantity FROM opening_balances WHERE base_id = $1`, baseID).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.def, nil
		}
		return 0, wrapQueryErr("get opening balance", err)
	}
	return v, nil
}
