package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-balance-api/internal/application/auth"
	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
)

// AuthHandler maneja el login de demostración y el cambio de rol.
type AuthHandler struct {
	uc *auth.SessionUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.SessionUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión con un rol
// @Description  Login de demostración: no valida credenciales, solo elige el rol del operador.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "role: commander | logistics"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !entity.IsValidRole(in.Role) {
		return validationError(c, "role debe ser commander o logistics")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SwitchRole godoc
// @Summary      Cambiar el rol de la sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.SwitchRoleRequest  true  "role: commander | logistics"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/role [post]
func (h *AuthHandler) SwitchRole(c *fiber.Ctx) error {
	var in dto.SwitchRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !entity.IsValidRole(in.Role) {
		return validationError(c, "role debe ser commander o logistics")
	}
	out, err := h.uc.SwitchRole(c.Context(), GetSession(c), in.Role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Los tokens no tienen estado en el servidor; el cliente descarta el suyo.
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Operador de la sesión actual
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u := GetSession(c).User
	return c.JSON(dto.UserResponse{ID: u.ID, Name: u.Name, Role: u.Role, Base: u.Base})
}
