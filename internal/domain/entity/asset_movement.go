package entity

// Tipos de movimiento de activos. Cada tipo alimenta un único acumulador del balance.
const (
	MovementTypePurchase    = "purchase"     // compra
	MovementTypeTransferIn  = "transfer-in"  // entrada por traslado
	MovementTypeTransferOut = "transfer-out" // salida por traslado
	MovementTypeAssignment  = "assignment"   // asignación a personal/unidad
	MovementTypeExpenditure = "expenditure"  // consumo o baja
)

// AssetMovement representa un cambio registrado en la cantidad de un activo en una base.
// Se crea una sola vez (ingesta externa) y no se modifica.
type AssetMovement struct {
	ID                string
	AssetID           string
	AssetName         string // desnormalizado al momento del registro
	Category          string // vehicle, weapon, ammunition
	Type              string // purchase, transfer-in, transfer-out, assignment, expenditure
	Quantity          int64
	Base              string
	Date              string // ISO yyyy-MM-dd; se compara lexicográficamente
	RelatedTransferID string // solo en transfer-in / transfer-out
}
