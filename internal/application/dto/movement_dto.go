package dto

// MovementQuery parámetros de GET /api/movements.
type MovementQuery struct {
	BaseID    string `query:"base"`
	StartDate string `query:"start"`
	EndDate   string `query:"end"`
	Category  string `query:"category"`
}

// AssetMovementResponse salida de un movimiento del libro.
type AssetMovementResponse struct {
	ID                string `json:"id"`
	AssetID           string `json:"assetId"`
	AssetName         string `json:"assetName"`
	Category          string `json:"category"`
	Type              string `json:"type"`
	Quantity          int64  `json:"quantity"`
	Base              string `json:"base"`
	Date              string `json:"date"`
	RelatedTransferID string `json:"relatedTransferId,omitempty"`
}
