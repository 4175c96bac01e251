package balance

import (
	"context"
	"time"

	"github.com/jhoicas/asset-balance-api/internal/application/dto"
)

// ReportInput datos que recibe el generador del reporte de balance.
type ReportInput struct {
	Summary     *dto.BalanceSummaryResponse
	GeneratedBy string
	GeneratedAt time.Time
}

// ReportGenerator genera la representación imprimible del balance (PDF).
type ReportGenerator interface {
	GenerateBalanceReport(ctx context.Context, in ReportInput) ([]byte, error)
}
