package dto

import "github.com/shopspring/decimal"

// BalanceQuery parámetros de GET /api/dashboard/balance.
type BalanceQuery struct {
	BaseID    string `query:"base"`
	StartDate string `query:"start"` // yyyy-MM-dd, inclusivo
	EndDate   string `query:"end"`   // yyyy-MM-dd, inclusivo
	Category  string `query:"category"`
}

// BalanceResponse los ocho valores del resumen de balance.
type BalanceResponse struct {
	Opening      int64 `json:"opening"`
	Closing      int64 `json:"closing"`
	NetMovement  int64 `json:"netMovement"`
	Purchases    int64 `json:"purchases"`
	TransfersIn  int64 `json:"transfersIn"`
	TransfersOut int64 `json:"transfersOut"`
	Assigned     int64 `json:"assigned"`
	Expended     int64 `json:"expended"`
}

// MovementChartItem una barra del gráfico "Asset Movement Overview".
type MovementChartItem struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Value int64           `json:"value"`
	Share decimal.Decimal `json:"share"` // % sobre la suma de las cinco barras, 2 decimales
}

// BalanceSummaryResponse respuesta completa del tablero para una base y rango.
type BalanceSummaryResponse struct {
	BaseID    string              `json:"base"`
	BaseName  string              `json:"baseName,omitempty"`
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Category  string              `json:"category"`
	Balance   BalanceResponse     `json:"balance"`
	Chart     []MovementChartItem `json:"chart"`
	Movements int                 `json:"movementCount"`
}
