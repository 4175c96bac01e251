// Package balance contiene el caso de uso del tablero: resumen de balance por base
// y rango de fechas, con el desglose para el gráfico y la exportación a PDF.
package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/domain"
	engine "github.com/jhoicas/asset-balance-api/internal/domain/balance"
	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// UseCase calcula el balance de una base.
//
// Fuentes: libro de movimientos, saldos de apertura y catálogo de bases (inyectados).
// No guarda estado entre llamadas; puede usarse desde varios handlers a la vez.
type UseCase struct {
	movements repository.AssetMovementRepository
	openings  repository.OpeningBalanceRepository
	bases     repository.BaseRepository
	reports   ReportGenerator
	now       func() time.Time
}

// NewUseCase construye el caso de uso. reports puede ser nil si no se exporta PDF.
func NewUseCase(
	movements repository.AssetMovementRepository,
	openings repository.OpeningBalanceRepository,
	bases repository.BaseRepository,
	reports ReportGenerator,
) *UseCase {
	return &UseCase{
		movements: movements,
		openings:  openings,
		bases:     bases,
		reports:   reports,
		now:       time.Now,
	}
}

// GetBalance construye el resumen para la base y el rango (inclusivo) de la consulta.
//
// Errores: ErrInvalidInput (base o categoría inválida), *InvalidRangeError (inicio > fin),
// ErrForbidden (la sesión no puede ver la base). Una base desconocida no es error:
// produce el resumen en cero con el saldo de apertura por defecto.
func (uc *UseCase) GetBalance(
	ctx context.Context,
	session entity.SessionContext,
	q dto.BalanceQuery,
) (*dto.BalanceSummaryResponse, error) {
	if q.BaseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if q.Category != "" && q.Category != engine.CategoryAll && !entity.IsValidCategory(q.Category) {
		return nil, domain.ErrInvalidInput
	}
	if err := engine.ValidateRange(q.StartDate, q.EndDate); err != nil {
		return nil, err
	}
	if !session.CanViewBase(q.BaseID) {
		return nil, domain.ErrForbidden
	}

	// ── Consultas en paralelo: libro, saldo de apertura y nombre de la base ──
	type ledgerResult struct {
		movements []entity.AssetMovement
		err       error
	}
	type openingResult struct {
		value int64
		err   error
	}
	type baseResult struct {
		base *entity.Base
		err  error
	}

	ledgerCh := make(chan ledgerResult, 1)
	openingCh := make(chan openingResult, 1)
	baseCh := make(chan baseResult, 1)

	go func() {
		m, err := uc.movements.ListByBase(ctx, q.BaseID)
		ledgerCh <- ledgerResult{m, err}
	}()
	go func() {
		v, err := uc.openings.GetOpeningBalance(ctx, q.BaseID)
		openingCh <- openingResult{v, err}
	}()
	go func() {
		b, err := uc.bases.GetByID(ctx, q.BaseID)
		baseCh <- baseResult{b, err}
	}()

	ledger := <-ledgerCh
	opening := <-openingCh
	base := <-baseCh

	if ledger.err != nil {
		return nil, fmt.Errorf("balance: libro de movimientos: %w", ledger.err)
	}
	if opening.err != nil {
		return nil, fmt.Errorf("balance: saldo de apertura: %w", opening.err)
	}
	if base.err != nil {
		return nil, fmt.Errorf("balance: base: %w", base.err)
	}

	selected := engine.FilterByBaseAndRange(ledger.movements, q.BaseID, q.StartDate, q.EndDate)
	selected = engine.FilterByCategory(selected, q.Category)
	data := engine.ComputeBalance(selected, opening.value)

	category := q.Category
	if category == "" {
		category = engine.CategoryAll
	}
	out := &dto.BalanceSummaryResponse{
		BaseID:    q.BaseID,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Category:  category,
		Balance:   toBalanceResponse(data),
		Chart:     chartItems(engine.Breakdown(data)),
		Movements: len(selected),
	}
	if base.base != nil {
		out.BaseName = base.base.Name
	}
	return out, nil
}

// ExportPDF genera el reporte imprimible del mismo resumen que GetBalance.
func (uc *UseCase) ExportPDF(
	ctx context.Context,
	session entity.SessionContext,
	q dto.BalanceQuery,
) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("balance: generador de reportes no configurado")
	}
	summary, err := uc.GetBalance(ctx, session, q)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateBalanceReport(ctx, ReportInput{
		Summary:     summary,
		GeneratedBy: session.User.Name,
		GeneratedAt: uc.now(),
	})
}

func toBalanceResponse(b entity.BalanceData) dto.BalanceResponse {
	return dto.BalanceResponse{
		Opening:      b.Opening,
		Closing:      b.Closing,
		NetMovement:  b.NetMovement,
		Purchases:    b.Purchases,
		TransfersIn:  b.TransfersIn,
		TransfersOut: b.TransfersOut,
		Assigned:     b.Assigned,
		Expended:     b.Expended,
	}
}

// chartItems agrega a cada barra su porcentaje sobre el total (0 si el total es 0).
func chartItems(buckets []engine.Bucket) []dto.MovementChartItem {
	var total int64
	for _, b := range buckets {
		total += b.Value
	}
	out := make([]dto.MovementChartItem, 0, len(buckets))
	for _, b := range buckets {
		share := decimal.Zero
		if total != 0 {
			share = decimal.NewFromInt(b.Value).Mul(hundred).Div(decimal.NewFromInt(total)).Round(2)
		}
		out = append(out, dto.MovementChartItem{
			Name:  b.Label,
			Type:  b.Type,
			Value: b.Value,
			Share: share,
		})
	}
	return out
}
