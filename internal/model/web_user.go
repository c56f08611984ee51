package model

import "time"

// WebUser is a storefront account. Sessions are opaque bearer tokens stored on
// the row itself (rotated on login, NULLed on logout), so revocation is
// immediate server-side.
type WebUser struct {
	ID                int     `gorm:"primaryKey"`
	Username          string  `gorm:"uniqueIndex;not null"`
	Fullname          *string
	Email             string `gorm:"uniqueIndex;not null"`
	Password          string `gorm:"not null"` // bcrypt hash
	Phone             *string
	Domicilio         *string
	Cuit              *string
	Role              string `gorm:"not null;default:'cliente'"`
	Status            string `gorm:"not null;default:'active'"`
	ProfileImageURL   *string
	EmailVerified     bool    `gorm:"not null;default:false"`
	VerificationToken *string `gorm:"index"`
	SessionToken      *string `gorm:"index"`
	GoogleID          *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (WebUser) TableName() string { return "web_users" }

// Carrito is a web user's shopping cart. One cart per user is 'active' at a
// time; checkout closes it.
type Carrito struct {
	ID        int    `gorm:"primaryKey"`
	WebUserID int    `gorm:"not null;index"`
	Status    string `gorm:"not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Carrito) TableName() string { return "web_carts" }

// CarritoItem references a web variant, never physical stock — the quantity a
// shopper can put in the cart is bounded by the variant's displayed stock.
type CarritoItem struct {
	ID        int `gorm:"primaryKey"`
	CartID    int `gorm:"not null;uniqueIndex:idx_cart_variant"`
	VariantID int `gorm:"not null;uniqueIndex:idx_cart_variant"`
	Quantity  int `gorm:"not null;check:quantity > 0"`

	Carrito  *Carrito     `gorm:"foreignKey:CartID"`
	Variante *WebVariante `gorm:"foreignKey:VariantID"`
}

func (CarritoItem) TableName() string { return "web_cart_items" }
