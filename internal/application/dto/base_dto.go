package dto

// BaseResponse salida de una base.
type BaseResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
