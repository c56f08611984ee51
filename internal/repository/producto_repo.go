package repository

import (
	"context"

	"mykonos/internal/dto"
	"mykonos/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id int) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Delete(ctx context.Context, id int) error

	// SlugEnUso reports whether another online product already claims the slug.
	SlugEnUso(ctx context.Context, slug string, excludeID int) (bool, error)

	// Used inside transactions — callers must pass the tx instance.
	FindByIDTx(tx *gorm.DB, id int) (*model.Producto, error)
	UpdateCamposTx(tx *gorm.DB, id int, campos map[string]interface{}) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id int) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{})

	if filter.Barcode != "" {
		q = q.Where("id IN (SELECT product_id FROM warehouse_stock_variants WHERE variant_barcode = ?)", filter.Barcode)
	}
	if filter.Nombre != "" {
		q = q.Where("product_name ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.GroupID != "" {
		q = q.Where("group_id = ?", filter.GroupID)
	}
	if filter.ProviderID != "" {
		q = q.Where("provider_id = ?", filter.ProviderID)
	}
	if filter.State != "" {
		q = q.Where("state = ?", filter.State)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("id DESC").Limit(filter.Limit).Offset(offset).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, id).Error
}

func (r *productoRepo) SlugEnUso(ctx context.Context, slug string, excludeID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("slug = ? AND en_tienda_online = TRUE AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *productoRepo) FindByIDTx(tx *gorm.DB, id int) (*model.Producto, error) {
	var p model.Producto
	err := tx.First(&p, id).Error
	return &p, err
}

func (r *productoRepo) UpdateCamposTx(tx *gorm.DB, id int, campos map[string]interface{}) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).Updates(campos).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
