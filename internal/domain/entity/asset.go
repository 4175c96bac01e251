package entity

// Categorías de equipo.
const (
	CategoryVehicle    = "vehicle"
	CategoryWeapon     = "weapon"
	CategoryAmmunition = "ammunition"
)

// Estados de un activo.
const (
	AssetStatusAvailable = "available"
	AssetStatusAssigned  = "assigned"
	AssetStatusInTransit = "in-transit"
	AssetStatusExpended  = "expended"
)

// Asset representa un tipo de equipo o material contabilizado por cantidad en una base.
type Asset struct {
	ID         string
	Name       string
	Category   string
	Quantity   int64
	Base       string
	Status     string
	AssignedTo string
}

// IsValidAssetStatus indica si s es un estado de activo conocido.
func IsValidAssetStatus(s string) bool {
	switch s {
	case AssetStatusAvailable, AssetStatusAssigned, AssetStatusInTransit, AssetStatusExpended:
		return true
	}
	return false
}

// IsValidCategory indica si c es una categoría conocida.
func IsValidCategory(c string) bool {
	switch c {
	case CategoryVehicle, CategoryWeapon, CategoryAmmunition:
		return true
	}
	return false
}
