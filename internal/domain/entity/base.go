package entity

// AllBases selecciona todas las bases en los listados; solo commander puede usarlo.
const AllBases = "all"

// Base representa una instalación militar que custodia activos.
type Base struct {
	ID       string
	Name     string
	Location string
}
