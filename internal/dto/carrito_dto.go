package dto

type AgregarItemRequest struct {
	VariantID int `json:"variant_id" validate:"required,min=1"`
	Cantidad  int `json:"cantidad"   validate:"required,min=1"`
}

type ActualizarItemRequest struct {
	Cantidad int `json:"cantidad" validate:"required,min=1"`
}

// CarritoItemResponse denormalizes enough variant/product data to render the
// cart without extra round trips.
type CarritoItemResponse struct {
	ID        int     `json:"id"`
	VariantID int     `json:"variant_id"`
	ProductID int     `json:"product_id"`
	NombreWeb *string `json:"nombre_web"`
	Talle     *string `json:"talle"`
	Color     *string `json:"color"`
	Cantidad  int     `json:"cantidad"`
	// Clamped reports that the requested quantity exceeded the variant's
	// displayed stock and was reduced.
	Clamped bool `json:"clamped,omitempty"`
}

type CarritoResponse struct {
	ID    int                   `json:"id"`
	Items []CarritoItemResponse `json:"items"`
}
