package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/application/usecase"
)

// BaseHandler maneja el catálogo de bases.
type BaseHandler struct {
	uc *usecase.BaseUseCase
}

// NewBaseHandler construye el handler.
func NewBaseHandler(uc *usecase.BaseUseCase) *BaseHandler {
	return &BaseHandler{uc: uc}
}

// List godoc
// @Summary      Listar bases
// @Tags         bases
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.ListResponse[dto.BaseResponse]
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/bases [get]
func (h *BaseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(list))
}

// GetByID godoc
// @Summary      Obtener base por ID
// @Tags         bases
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "ID de la base"
// @Success      200  {object}  dto.BaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bases/{id} [get]
func (h *BaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "base no encontrada"})
	}
	return c.JSON(out)
}
