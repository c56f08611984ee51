package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	ProductName  string           `json:"product_name"  validate:"required,min=2,max=120"`
	Description  *string          `json:"description"`
	Cost         decimal.Decimal  `json:"cost"          validate:"required"`
	SalePrice    decimal.Decimal  `json:"sale_price"    validate:"required"`
	ProviderCode *string          `json:"provider_code"`
	GroupID      *int             `json:"group_id"`
	ProviderID   *int             `json:"provider_id"`
	BrandID      *int             `json:"brand_id"`
	Tax          decimal.Decimal  `json:"tax"           validate:"min=0"`
	Discount     decimal.Decimal  `json:"discount"      validate:"min=0"`
	Comments     *string          `json:"comments"`
	State        string           `json:"state"`

	EnTiendaOnline bool             `json:"en_tienda_online"`
	NombreWeb      *string          `json:"nombre_web"`
	DescripcionWeb *string          `json:"descripcion_web"`
	Slug           *string          `json:"slug"`
	PrecioWeb      *decimal.Decimal `json:"precio_web"`
}

// ActualizarProductoRequest is a sparse payload: nil means "leave unchanged".
// The variant list and discount fields coordinate dependent writes inside the
// same transaction as the column update.
type ActualizarProductoRequest struct {
	Nombre         *string          `json:"nombre"          validate:"omitempty,min=2,max=120"`
	Descripcion    *string          `json:"descripcion"`
	PrecioWeb      *decimal.Decimal `json:"precio_web"`
	EnTiendaOnline *bool            `json:"en_tienda_online"`
	Slug           *string          `json:"slug"`

	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	DiscountStartDate  *time.Time       `json:"discount_start_date"`
	DiscountEndDate    *time.Time       `json:"discount_end_date"`

	Variantes []VarianteUpdateInput `json:"variantes" validate:"omitempty,dive"`
}

type AgregarImagenRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductoFilter struct {
	Barcode      string `form:"barcode"`
	Nombre       string `form:"nombre"`
	GroupID      string `form:"group_id"`
	ProviderID   string `form:"provider_id"`
	State        string `form:"state"`
	Page         int    `form:"page,default=1"   validate:"min=1"`
	Limit        int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID           int              `json:"id"`
	ProductName  string           `json:"product_name"`
	Description  *string          `json:"description"`
	Cost         decimal.Decimal  `json:"cost"`
	SalePrice    decimal.Decimal  `json:"sale_price"`
	ProviderCode *string          `json:"provider_code"`
	GroupID      *int             `json:"group_id"`
	ProviderID   *int             `json:"provider_id"`
	BrandID      *int             `json:"brand_id"`
	Tax          decimal.Decimal  `json:"tax"`
	Discount     decimal.Decimal  `json:"discount"`
	Comments     *string          `json:"comments"`
	State        string           `json:"state"`

	EnTiendaOnline bool             `json:"en_tienda_online"`
	NombreWeb      *string          `json:"nombre_web"`
	DescripcionWeb *string          `json:"descripcion_web"`
	Slug           *string          `json:"slug"`
	PrecioWeb      *decimal.Decimal `json:"precio_web"`

	CreationDate     time.Time  `json:"creation_date"`
	LastModifiedDate *time.Time `json:"last_modified_date"`
}

type ProductoListResponse struct {
	Data       []ProductoResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// ActualizarProductoResponse carries the refreshed projection plus the
// per-entry outcome of every variant in the request.
type ActualizarProductoResponse struct {
	Producto  ProductoResponse    `json:"producto"`
	Variantes []ResultadoVariante `json:"variantes"`
}

type ImagenResponse struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	ImageURL  string `json:"image_url"`
}
