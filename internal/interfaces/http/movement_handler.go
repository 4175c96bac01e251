package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/application/usecase"
)

// MovementHandler expone el libro de movimientos filtrado.
type MovementHandler struct {
	uc       *usecase.MovementUseCase
	defaults QueryDefaults
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase, defaults QueryDefaults) *MovementHandler {
	return &MovementHandler{uc: uc, defaults: defaults}
}

// List godoc
// @Summary      Movimientos de una base en un rango
// @Tags         movements
// @Produce      json
// @Security     Bearer
// @Param        base      query  string  false  "ID de la base; all = todas (solo commander)"
// @Param        start     query  string  false  "Fecha inicial yyyy-MM-dd"
// @Param        end       query  string  false  "Fecha final yyyy-MM-dd"
// @Param        category  query  string  false  "vehicle | weapon | ammunition | all"
// @Success      200  {object}  dto.ListResponse[dto.AssetMovementResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var q dto.MovementQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	if msg, ok := h.defaults.rangeFilter(GetSession(c), &q.BaseID, &q.StartDate, &q.EndDate); !ok {
		return validationError(c, msg)
	}
	list, err := h.uc.List(c.Context(), GetSession(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(list))
}
