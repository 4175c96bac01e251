package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-balance-api/internal/application/balance"
	"github.com/jhoicas/asset-balance-api/internal/application/dto"
)

// DashboardHandler maneja el balance de activos del tablero.
type DashboardHandler struct {
	uc       *balance.UseCase
	defaults QueryDefaults
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *balance.UseCase, defaults QueryDefaults) *DashboardHandler {
	return &DashboardHandler{uc: uc, defaults: defaults}
}

// GetBalance godoc
// @Summary      Balance de activos de una base
// @Description  Apertura, cierre, movimiento neto y los cinco totales por tipo para el rango inclusivo.
// @Description  Sin base se usa la de la sesión; sin start, el inicio configurado; sin end, hoy.
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Param        base      query  string  false  "ID de la base"
// @Param        start     query  string  false  "Fecha inicial yyyy-MM-dd"
// @Param        end       query  string  false  "Fecha final yyyy-MM-dd"
// @Param        category  query  string  false  "vehicle | weapon | ammunition | all"
// @Success      200  {object}  dto.BalanceSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/balance [get]
func (h *DashboardHandler) GetBalance(c *fiber.Ctx) error {
	q, ok, err := h.parseQuery(c)
	if !ok {
		return err
	}
	summary, err := h.uc.GetBalance(c.Context(), GetSession(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetReport godoc
// @Summary      Reporte PDF del balance
// @Tags         dashboard
// @Produce      application/pdf
// @Security     Bearer
// @Param        base      query  string  false  "ID de la base"
// @Param        start     query  string  false  "Fecha inicial yyyy-MM-dd"
// @Param        end       query  string  false  "Fecha final yyyy-MM-dd"
// @Param        category  query  string  false  "vehicle | weapon | ammunition | all"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/balance/report [get]
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	q, ok, err := h.parseQuery(c)
	if !ok {
		return err
	}
	pdf, err := h.uc.ExportPDF(c.Context(), GetSession(c), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="balance_%s_%s_%s.pdf"`, q.BaseID, q.StartDate, q.EndDate))
	return c.Send(pdf)
}

// parseQuery lee y completa la consulta; si ok=false la respuesta de error ya fue escrita.
func (h *DashboardHandler) parseQuery(c *fiber.Ctx) (dto.BalanceQuery, bool, error) {
	var q dto.BalanceQuery
	if err := c.QueryParser(&q); err != nil {
		return q, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	if msg, ok := h.defaults.rangeFilter(GetSession(c), &q.BaseID, &q.StartDate, &q.EndDate); !ok {
		return q, false, validationError(c, msg)
	}
	return q, true, nil
}
