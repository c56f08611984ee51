package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta is an immutable-after-creation sale record. Web purchases carry the
// owning WebUserID; point-of-sale records leave it NULL.
type Venta struct {
	ID               int        `gorm:"primaryKey"`
	WebUserID        *int       `gorm:"index"`
	SaleDate         time.Time  `gorm:"not null;index"`
	Subtotal         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Discount         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status           string          `gorm:"not null;default:'pending'"`
	ShippingAddress  *string
	ShippingStatus   *string
	ShippingCost     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PaymentReference *string
	InvoiceNumber    *string
	Notes            *string
	Origin           string `gorm:"not null;default:'web'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Venta) TableName() string { return "sales" }

// VentaDetalle snapshots product name/price/size/color at sale time so the
// historical record survives later catalog edits. ProductID stays as a soft
// reference for image lookups.
type VentaDetalle struct {
	ID                 int     `gorm:"primaryKey"`
	SaleID             int     `gorm:"not null;index"`
	ProductID          *int    `gorm:"index"`
	ProductName        string  `gorm:"not null"`
	ProductCode        *string
	SizeName           *string
	ColorName          *string
	SalePrice          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity           int             `gorm:"not null"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	DiscountAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TaxPercentage      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	TaxAmount          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Subtotal           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total              decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Venta *Venta `gorm:"foreignKey:SaleID"`
}

func (VentaDetalle) TableName() string { return "sales_detail" }
