package dto

// AssetFilter parámetros de GET /api/assets.
type AssetFilter struct {
	BaseID   string `query:"base"`
	Category string `query:"category"` // vacío o "all" = todas
	Status   string `query:"status"`   // vacío o "all" = todos
	Search   string `query:"q"`        // coincidencia parcial en el nombre, sin distinguir mayúsculas
}

// AssetResponse salida de un activo.
type AssetResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Quantity   int64  `json:"quantity"`
	Base       string `json:"base"`
	Status     string `json:"status"`
	AssignedTo string `json:"assignedTo,omitempty"`
}
