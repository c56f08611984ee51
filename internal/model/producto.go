package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto holds both the internal (back-office) view of a product and its
// web-facing projection. A product appears in the online store only when
// EnTiendaOnline is true; it is never physically deleted while sales reference
// it — retiring means toggling the flag off.
type Producto struct {
	ID           int     `gorm:"primaryKey"`
	ProductName  string  `gorm:"index;not null"`
	Description  *string
	Cost         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SalePrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ProviderCode *string         `gorm:"index"`
	GroupID      *int            `gorm:"index"`
	ProviderID   *int            `gorm:"index"`
	BrandID      *int
	Tax          decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Discount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	// Static discount fields — the discounts table wins when an active,
	// in-window row exists for this product.
	OriginalPrice      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	DiscountPercentage decimal.Decimal  `gorm:"type:decimal(5,2);not null;default:0"`
	DiscountAmount     decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	HasDiscount        bool             `gorm:"not null;default:false"`

	Comments *string
	State    string `gorm:"not null;default:'active'"`

	// Web projection. Slug must be unique among online products (service-level
	// check; the schema cannot express the partial constraint portably).
	EnTiendaOnline bool    `gorm:"column:en_tienda_online;not null;default:false;index"`
	NombreWeb      *string `gorm:"column:nombre_web"`
	DescripcionWeb *string `gorm:"column:descripcion_web"`
	Slug           *string `gorm:"index"`
	PrecioWeb      *decimal.Decimal `gorm:"column:precio_web;type:decimal(12,2)"`

	CreationDate     time.Time `gorm:"autoCreateTime"`
	LastModifiedDate *time.Time

	Grupo *Grupo `gorm:"foreignKey:GroupID"`
}

// TableName keeps the original schema's table name.
func (Producto) TableName() string { return "products" }

// Imagen is a product image URL. Listing order is insertion order (id ASC).
type Imagen struct {
	ID        int    `gorm:"primaryKey"`
	ProductID int    `gorm:"not null;index"`
	ImageURL  string `gorm:"not null"`

	Producto *Producto `gorm:"foreignKey:ProductID"`
}

func (Imagen) TableName() string { return "images" }

// Descuento is a polymorphic discount keyed by (discount_type, target_id).
// Only discount_type='product' is managed here; a discount is effective when
// is_active and the current time falls inside the optional window.
type Descuento struct {
	ID                 int             `gorm:"primaryKey"`
	DiscountType       string          `gorm:"not null;index:idx_discount_target"`
	TargetID           int             `gorm:"not null;index:idx_discount_target"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	StartDate          *time.Time
	EndDate            *time.Time
	IsActive           bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time
}

func (Descuento) TableName() string { return "discounts" }
