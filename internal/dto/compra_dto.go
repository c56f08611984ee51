package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompraItemResponse is one snapshot line of a past order. ImageURL is the
// product's first image, when the product still exists.
type CompraItemResponse struct {
	ID                 int             `json:"id"`
	ProductID          *int            `json:"product_id"`
	ProductName        string          `json:"product_name"`
	ProductCode        *string         `json:"product_code"`
	SizeName           *string         `json:"size_name"`
	ColorName          *string         `json:"color_name"`
	SalePrice          decimal.Decimal `json:"sale_price"`
	Quantity           int             `json:"quantity"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Total              decimal.Decimal `json:"total"`
	ImageURL           *string         `json:"image_url"`
}

type CompraResponse struct {
	ID               int                  `json:"id"`
	SaleDate         time.Time            `json:"sale_date"`
	Subtotal         decimal.Decimal      `json:"subtotal"`
	TaxAmount        decimal.Decimal      `json:"tax_amount"`
	Discount         decimal.Decimal      `json:"discount"`
	Total            decimal.Decimal      `json:"total"`
	Status           string               `json:"status"`
	ShippingAddress  *string              `json:"shipping_address"`
	ShippingStatus   *string              `json:"shipping_status"`
	ShippingCost     decimal.Decimal      `json:"shipping_cost"`
	PaymentReference *string              `json:"payment_reference"`
	InvoiceNumber    *string              `json:"invoice_number"`
	Notes            *string              `json:"notes"`
	Origin           string               `json:"origin"`
	Items            []CompraItemResponse `json:"items"`
}
