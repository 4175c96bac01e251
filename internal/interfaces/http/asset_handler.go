package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/application/usecase"
)

// AssetHandler maneja el inventario de activos por base.
type AssetHandler struct {
	uc *usecase.AssetUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// List godoc
// @Summary      Listar activos de una base
// @Tags         assets
// @Produce      json
// @Security     Bearer
// @Param        base      query  string  false  "ID de la base (por defecto la de la sesión); all = todas (solo commander)"
// @Param        category  query  string  false  "vehicle | weapon | ammunition | all"
// @Param        status    query  string  false  "available | assigned | in-transit | expended | all"
// @Param        q         query  string  false  "Búsqueda por nombre"
// @Success      200  {object}  dto.ListResponse[dto.AssetResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	var f dto.AssetFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	session := GetSession(c)
	if f.BaseID == "" {
		f.BaseID = session.User.Base
	}
	list, err := h.uc.List(c.Context(), session, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(list))
}
