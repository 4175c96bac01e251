package entity

// Estados de un traslado (solo lectura en este servicio).
const (
	TransferStatusPending   = "pending"
	TransferStatusInTransit = "in-transit"
	TransferStatusCompleted = "completed"
)

// Transfer representa el traslado de activos entre dos bases.
// Se refleja en el libro como un par transfer-out / transfer-in con RelatedTransferID = ID.
type Transfer struct {
	ID          string
	AssetID     string
	AssetName   string
	Quantity    int64
	FromBase    string
	ToBase      string
	Date        string
	Status      string
	InitiatedBy string
}

// Involves indica si el traslado sale o llega a la base indicada.
func (t Transfer) Involves(baseID string) bool {
	return t.FromBase == baseID || t.ToBase == baseID
}
