package dto

import "github.com/shopspring/decimal"

// ─── Variant stock curation (admin) ──────────────────────────────────────────

// StockSucursalInput assigns part of a variant's web stock to one branch.
type StockSucursalInput struct {
	SucursalID       int `json:"sucursal_id"       validate:"required,min=1"`
	CantidadAsignada int `json:"cantidad_asignada" validate:"min=0"`
}

// VarianteUpdateInput is one entry of a product update's variant list.
type VarianteUpdateInput struct {
	ID                 int                  `json:"id" validate:"required,min=1"`
	MostrarEnWeb       bool                 `json:"mostrar_en_web"`
	ConfiguracionStock []StockSucursalInput `json:"configuracion_stock"`
}

// ResultadoVariante reports what happened to one variant entry of a batch.
// A skipped entry never aborts its siblings; Reason says why it was skipped
// or which assignments were clamped.
type ResultadoVariante struct {
	VariantID    int    `json:"variant_id"`
	Applied      bool   `json:"applied"`
	AppliedTotal int    `json:"applied_total"`
	Reason       string `json:"reason,omitempty"`
}

// ─── Branch stock breakdown responses ────────────────────────────────────────

type VarianteSucursal struct {
	VariantID    int     `json:"variant_id"`
	Size         *string `json:"size"`
	Color        *string `json:"color"`
	ColorHex     *string `json:"color_hex"`
	Quantity     int     `json:"quantity"`
	Barcode      *string `json:"barcode"`
	CantidadWeb  int     `json:"cantidad_web"`
	MostrarEnWeb bool    `json:"mostrar_en_web"`
}

type SucursalConStockResponse struct {
	BranchID           int                `json:"branch_id"`
	BranchName         string             `json:"branch_name"`
	GroupName          string             `json:"group_name"`
	ProviderName       string             `json:"provider_name"`
	DiscountPercentage decimal.Decimal    `json:"discount_percentage"`
	Variants           []VarianteSucursal `json:"variants"`
}

type SucursalResponse struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Status  string  `json:"status"`
}
