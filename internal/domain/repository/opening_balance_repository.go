package repository

import "context"

// OpeningBalanceRepository provee el saldo de apertura de cada base.
// El motor lo trata como un dato externo; nunca lo deriva.
type OpeningBalanceRepository interface {
	GetOpeningBalance(ctx context.Context, baseID string) (int64, error)
}
