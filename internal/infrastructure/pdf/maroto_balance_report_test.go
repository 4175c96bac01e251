package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	appbalance "github.com/jhoicas/asset-balance-api/internal/application/balance"
	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/infrastructure/pdf"
)

func sampleSummary() *dto.BalanceSummaryResponse {
	return &dto.BalanceSummaryResponse{
		BaseID:    "base1",
		BaseName:  "Alpha Base",
		StartDate: "2023-01-01",
		EndDate:   "2024-12-31",
		Category:  "all",
		Balance: dto.BalanceResponse{
			Opening: 50000, Closing: 48997, NetMovement: -3,
			Purchases: 2, TransfersOut: 5, Assigned: 50, Expended: 1000,
		},
		Chart: []dto.MovementChartItem{
			{Name: "Purchases", Type: "purchase", Value: 2, Share: decimal.RequireFromString("0.19")},
			{Name: "Transfers In", Type: "transfer-in", Value: 0, Share: decimal.Zero},
			{Name: "Transfers Out", Type: "transfer-out", Value: 5, Share: decimal.RequireFromString("0.47")},
			{Name: "Assigned", Type: "assignment", Value: 50, Share: decimal.RequireFromString("4.73")},
			{Name: "Expended", Type: "expenditure", Value: 1000, Share: decimal.RequireFromString("94.61")},
		},
		Movements: 4,
	}
}

func TestGenerateBalanceReport_ProducePDF(t *testing.T) {
	g := pdf.NewMarotoBalanceReport(language.English)

	out, err := g.GenerateBalanceReport(context.Background(), appbalance.ReportInput{
		Summary:     sampleSummary(),
		GeneratedBy: "John Doe",
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateBalanceReport_SinResumen(t *testing.T) {
	g := pdf.NewMarotoBalanceReport(language.Und)

	_, err := g.GenerateBalanceReport(context.Background(), appbalance.ReportInput{})

	assert.Error(t, err)
}
