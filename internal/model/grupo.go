package model

// Grupo is a self-referential category tree node. A node is a root when its
// parent is NULL or when it is explicitly marked as root. Nothing in the
// schema forbids cycles — traversals must guard against them.
type Grupo struct {
	ID            int    `gorm:"primaryKey"`
	GroupName     string `gorm:"index;not null"`
	ParentGroupID *int   `gorm:"index"`
	MarkedAsRoot  bool   `gorm:"not null;default:false"`
}

func (Grupo) TableName() string { return "groups" }

// EsRaiz reports whether the node is a tree root.
func (g Grupo) EsRaiz() bool { return g.ParentGroupID == nil || g.MarkedAsRoot }

// Talle is a size attribute dimension.
type Talle struct {
	ID       int    `gorm:"primaryKey"`
	SizeName string `gorm:"uniqueIndex;not null"`
}

func (Talle) TableName() string { return "sizes" }

// Color is a color attribute dimension with an optional hex code for the UI.
type Color struct {
	ID        int     `gorm:"primaryKey"`
	ColorName string  `gorm:"uniqueIndex;not null"`
	ColorHex  *string
}

func (Color) TableName() string { return "colors" }

// ProductoTalle joins products to the sizes they come in.
type ProductoTalle struct {
	ProductID int `gorm:"primaryKey"`
	SizeID    int `gorm:"primaryKey"`
}

func (ProductoTalle) TableName() string { return "product_sizes" }

// ProductoColor joins products to the colors they come in.
type ProductoColor struct {
	ProductID int `gorm:"primaryKey"`
	ColorID   int `gorm:"primaryKey"`
}

func (ProductoColor) TableName() string { return "product_colors" }
