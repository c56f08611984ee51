package dto

import "github.com/shopspring/decimal"

// ─── Storefront filter ───────────────────────────────────────────────────────

// TiendaFilter selects storefront products. Category resolves a group name and
// all of its descendants; SucursalID switches stock from the global
// displayed-stock mode to the branch's physical stock.
type TiendaFilter struct {
	Category   string `form:"category"`
	SucursalID *int   `form:"sucursal_id"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
	Offset     int    `form:"offset,default=0" validate:"min=0"`
}

// ─── Storefront responses ────────────────────────────────────────────────────

// VarianteTienda is one (size, color) entry of a storefront product.
// Barcode is only available in branch mode — the global view aggregates web
// variants, which carry no branch-scoped barcode.
type VarianteTienda struct {
	VariantID int     `json:"variant_id"`
	Talle     *string `json:"talle"`
	Color     *string `json:"color"`
	ColorHex  *string `json:"color_hex"`
	Stock     int     `json:"stock"`
	Barcode   *string `json:"barcode"`
}

type ProductoTiendaResponse struct {
	ID                 int              `json:"id"`
	NombreWeb          *string          `json:"nombre_web"`
	DescripcionWeb     *string          `json:"descripcion_web"`
	PrecioWeb          *decimal.Decimal `json:"precio_web"`
	Slug               *string          `json:"slug"`
	Category           string           `json:"category"`
	Images             []string         `json:"images"`
	StockDisponible    int              `json:"stock_disponible"`
	DiscountPercentage decimal.Decimal  `json:"discount_percentage"`
	Variantes          []VarianteTienda `json:"variantes"`
}

type ColorTienda struct {
	ID     int     `json:"id"`
	Nombre string  `json:"nombre"`
	Hex    *string `json:"hex"`
}

// DetalleProductoResponse extends the listing shape with the full color/size
// catalogs linked to the product, for UI filtering.
type DetalleProductoResponse struct {
	ProductoTiendaResponse
	Colores []ColorTienda `json:"colores"`
	Talles  []string      `json:"talles"`
}

// CodigoResponse is the result of resolving a scanned or typed code.
type CodigoResponse struct {
	ProductID int `json:"product_id"`
}
