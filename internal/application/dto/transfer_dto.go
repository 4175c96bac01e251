package dto

// TransferResponse salida de un traslado.
type TransferResponse struct {
	ID          string `json:"id"`
	AssetID     string `json:"assetId"`
	AssetName   string `json:"assetName"`
	Quantity    int64  `json:"quantity"`
	FromBase    string `json:"fromBase"`
	ToBase      string `json:"toBase"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	InitiatedBy string `json:"initiatedBy"`
	Direction   string `json:"direction"` // outgoing | incoming respecto de la base consultada
}
