package model

// Entidad is a third party the business deals with; providers are the only
// kind this system reads (product provider name resolution).
type Entidad struct {
	ID         int    `gorm:"primaryKey"`
	EntityName string `gorm:"not null"`
	EntityType string `gorm:"not null;default:'provider'"`
	Cuit       *string
	Phone      *string
	Email      *string
}

func (Entidad) TableName() string { return "entities" }
