package repository

import (
	"context"

	"mykonos/internal/model"

	"gorm.io/gorm"
)

// VentaRepository reads order history. Sale rows are immutable after creation;
// nothing here mutates them.
type VentaRepository interface {
	ListByWebUser(ctx context.Context, webUserID int) ([]model.Venta, error)
	FindByIDAndUser(ctx context.Context, saleID, webUserID int) (*model.Venta, error)
	DetailsBySale(ctx context.Context, saleID int) ([]model.VentaDetalle, error)
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) ListByWebUser(ctx context.Context, webUserID int) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Where("web_user_id = ?", webUserID).
		Order("sale_date DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) FindByIDAndUser(ctx context.Context, saleID, webUserID int) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Where("id = ? AND web_user_id = ?", saleID, webUserID).
		First(&v).Error
	return &v, err
}

func (r *ventaRepo) DetailsBySale(ctx context.Context, saleID int) ([]model.VentaDetalle, error) {
	var detalles []model.VentaDetalle
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("id ASC").
		Find(&detalles).Error
	return detalles, err
}
