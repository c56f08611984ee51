package model

// Sucursal is a physical branch/warehouse with independently tracked stock.
// The original schema calls this table "storage".
type Sucursal struct {
	ID      int     `gorm:"primaryKey"`
	Name    string  `gorm:"not null"`
	Address *string
	Phone   *string
	Status  string `gorm:"not null;default:'active'"`
}

func (Sucursal) TableName() string { return "storage" }

// StockVariante is the physical-stock source of truth: quantity on hand for a
// (product, size, color) combination at one branch. Rows here are owned by the
// inventory subsystem — the web-stock engine only reads them.
type StockVariante struct {
	ID             int    `gorm:"primaryKey"`
	ProductID      int    `gorm:"not null;index"`
	SizeID         *int   `gorm:"index"`
	ColorID        *int   `gorm:"index"`
	BranchID       int    `gorm:"not null;index"`
	Quantity       int    `gorm:"not null;default:0;check:quantity >= 0"`
	VariantBarcode string `gorm:"uniqueIndex;not null"`

	Producto *Producto `gorm:"foreignKey:ProductID"`
	Sucursal *Sucursal `gorm:"foreignKey:BranchID"`
}

func (StockVariante) TableName() string { return "warehouse_stock_variants" }

// WebVariante is the web-facing projection of a (product, size, color)
// combination, independent of branch. DisplayedStock is the total quantity the
// storefront advertises; IsActive hides the variant without deleting it.
// Rows are created lazily the first time branch stock is requested.
type WebVariante struct {
	ID             int  `gorm:"primaryKey"`
	ProductID      int  `gorm:"not null;uniqueIndex:idx_web_variante"`
	SizeID         *int `gorm:"uniqueIndex:idx_web_variante"`
	ColorID        *int `gorm:"uniqueIndex:idx_web_variante"`
	DisplayedStock int  `gorm:"not null;default:0"`
	IsActive       bool `gorm:"not null;default:true"`
}

func (WebVariante) TableName() string { return "web_variants" }

// AsignacionSucursal allocates part of a web variant's displayed stock to one
// branch. The engine clamps CantidadAsignada so it never exceeds the physical
// quantity at that branch.
type AsignacionSucursal struct {
	ID               int `gorm:"primaryKey"`
	VariantID        int `gorm:"not null;uniqueIndex:idx_asignacion"`
	BranchID         int `gorm:"not null;uniqueIndex:idx_asignacion"`
	CantidadAsignada int `gorm:"not null;default:0"`

	Variante *WebVariante `gorm:"foreignKey:VariantID"`
}

func (AsignacionSucursal) TableName() string { return "web_variant_branch_assignment" }
