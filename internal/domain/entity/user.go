package entity

import "time"

// Roles válidos. El rol es un selector de capacidades, no una credencial.
const (
	RoleCommander = "commander"
	RoleLogistics = "logistics"
)

// User representa al operador del tablero.
type User struct {
	ID   string
	Name string
	Role string // commander, logistics
	Base string // base asignada
}

// IsValidRole indica si r es un rol conocido.
func IsValidRole(r string) bool {
	return r == RoleCommander || r == RoleLogistics
}

// SessionContext es la sesión explícita que reciben los casos de uso.
type SessionContext struct {
	SessionID string
	User      User
	IssuedAt  time.Time
}

// CanViewBase aplica la regla de alcance por rol:
// commander consulta cualquier base, logistics solo la propia.
func (s SessionContext) CanViewBase(baseID string) bool {
	switch s.User.Role {
	case RoleCommander:
		return true
	case RoleLogistics:
		return baseID == s.User.Base
	}
	return false
}
