package repository

import (
	"context"
	"time"

	"mykonos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TipoDescuentoProducto is the only discount type this engine manages.
const TipoDescuentoProducto = "product"

// DescuentoRepository manages product-targeted rows of the discounts table.
type DescuentoRepository interface {
	// MaxActivo returns the highest percentage among active, in-window
	// discounts for the product, or zero when none applies.
	MaxActivo(ctx context.Context, productID int) (decimal.Decimal, error)

	FindActivoTx(tx *gorm.DB, productID int) (*model.Descuento, error)
	CreateTx(tx *gorm.DB, d *model.Descuento) error
	UpdateTx(tx *gorm.DB, id int, campos map[string]interface{}) error
	DeactivateTx(tx *gorm.DB, productID int, endDate time.Time) error
}

type descuentoRepo struct{ db *gorm.DB }

func NewDescuentoRepository(db *gorm.DB) DescuentoRepository { return &descuentoRepo{db: db} }

func (r *descuentoRepo) MaxActivo(ctx context.Context, productID int) (decimal.Decimal, error) {
	var pct decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(discount_percentage), 0)
		FROM discounts
		WHERE discount_type = ? AND target_id = ? AND is_active = TRUE
		  AND (start_date IS NULL OR start_date <= CURRENT_TIMESTAMP)
		  AND (end_date IS NULL OR end_date >= CURRENT_TIMESTAMP)`,
		TipoDescuentoProducto, productID).Scan(&pct).Error
	return pct, err
}

func (r *descuentoRepo) FindActivoTx(tx *gorm.DB, productID int) (*model.Descuento, error) {
	var d model.Descuento
	err := tx.Where("discount_type = ? AND target_id = ? AND is_active = TRUE",
		TipoDescuentoProducto, productID).
		Order("id DESC").
		First(&d).Error
	return &d, err
}

func (r *descuentoRepo) CreateTx(tx *gorm.DB, d *model.Descuento) error {
	return tx.Create(d).Error
}

func (r *descuentoRepo) UpdateTx(tx *gorm.DB, id int, campos map[string]interface{}) error {
	return tx.Model(&model.Descuento{}).Where("id = ?", id).Updates(campos).Error
}

func (r *descuentoRepo) DeactivateTx(tx *gorm.DB, productID int, endDate time.Time) error {
	return tx.Model(&model.Descuento{}).
		Where("discount_type = ? AND target_id = ? AND is_active = TRUE",
			TipoDescuentoProducto, productID).
		Updates(map[string]interface{}{"is_active": false, "end_date": endDate}).Error
}
