package dto

import "time"

// LoginRequest entrada del login de demostración: solo se elige el rol.
type LoginRequest struct {
	Role string `json:"role" validate:"required,oneof=commander logistics"`
}

// SwitchRoleRequest entrada para cambiar el rol de la sesión actual.
type SwitchRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=commander logistics"`
}

// UserResponse salida del operador de la sesión.
type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Base string `json:"base"`
}

// LoginResponse token de sesión + operador.
type LoginResponse struct {
	Token     string       `json:"token"`
	SessionID string       `json:"sessionId"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
