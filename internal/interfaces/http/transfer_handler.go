package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/application/usecase"
)

// TransferHandler maneja la consulta de traslados entre bases.
type TransferHandler struct {
	uc *usecase.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *usecase.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// List godoc
// @Summary      Traslados que salen o llegan a una base
// @Tags         transfers
// @Produce      json
// @Security     Bearer
// @Param        base  query  string  false  "ID de la base (por defecto la de la sesión)"
// @Success      200  {object}  dto.ListResponse[dto.TransferResponse]
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	session := GetSession(c)
	baseID := c.Query("base", session.User.Base)
	list, err := h.uc.ListByBase(c.Context(), session, baseID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(list))
}
