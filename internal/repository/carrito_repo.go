package repository

import (
	"context"

	"mykonos/internal/model"

	"gorm.io/gorm"
)

// CarritoItemRow joins a cart line to its variant and product for rendering.
type CarritoItemRow struct {
	ID        int
	VariantID int
	ProductID int
	NombreWeb *string
	Talle     *string
	Color     *string
	Cantidad  int
}

type CarritoRepository interface {
	FindActivo(ctx context.Context, webUserID int) (*model.Carrito, error)
	Create(ctx context.Context, c *model.Carrito) error
	FindItem(ctx context.Context, cartID, variantID int) (*model.CarritoItem, error)
	FindItemByID(ctx context.Context, itemID, cartID int) (*model.CarritoItem, error)
	AddItem(ctx context.Context, item *model.CarritoItem) error
	UpdateItemCantidad(ctx context.Context, itemID, cantidad int) error
	RemoveItem(ctx context.Context, itemID, cartID int) error
	ClearItems(ctx context.Context, cartID int) error
	ItemsConDetalle(ctx context.Context, cartID int) ([]CarritoItemRow, error)
}

type carritoRepo struct{ db *gorm.DB }

func NewCarritoRepository(db *gorm.DB) CarritoRepository { return &carritoRepo{db: db} }

func (r *carritoRepo) FindActivo(ctx context.Context, webUserID int) (*model.Carrito, error) {
	var c model.Carrito
	err := r.db.WithContext(ctx).
		Where("web_user_id = ? AND status = 'active'", webUserID).
		First(&c).Error
	return &c, err
}

func (r *carritoRepo) Create(ctx context.Context, c *model.Carrito) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *carritoRepo) FindItem(ctx context.Context, cartID, variantID int) (*model.CarritoItem, error) {
	var item model.CarritoItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND variant_id = ?", cartID, variantID).
		First(&item).Error
	return &item, err
}

func (r *carritoRepo) FindItemByID(ctx context.Context, itemID, cartID int) (*model.CarritoItem, error) {
	var item model.CarritoItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error
	return &item, err
}

func (r *carritoRepo) AddItem(ctx context.Context, item *model.CarritoItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *carritoRepo) UpdateItemCantidad(ctx context.Context, itemID, cantidad int) error {
	return r.db.WithContext(ctx).Model(&model.CarritoItem{}).
		Where("id = ?", itemID).
		Update("quantity", cantidad).Error
}

func (r *carritoRepo) RemoveItem(ctx context.Context, itemID, cartID int) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&model.CarritoItem{}).Error
}

func (r *carritoRepo) ClearItems(ctx context.Context, cartID int) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CarritoItem{}).Error
}

func (r *carritoRepo) ItemsConDetalle(ctx context.Context, cartID int) ([]CarritoItemRow, error) {
	var rows []CarritoItemRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			wci.id,
			wci.variant_id,
			wv.product_id,
			p.nombre_web,
			sz.size_name  AS talle,
			c.color_name  AS color,
			wci.quantity  AS cantidad
		FROM web_cart_items wci
		JOIN web_variants wv ON wci.variant_id = wv.id
		JOIN products p ON wv.product_id = p.id
		LEFT JOIN sizes sz ON wv.size_id = sz.id
		LEFT JOIN colors c ON wv.color_id = c.id
		WHERE wci.cart_id = ?
		ORDER BY wci.id ASC`, cartID).Scan(&rows).Error
	return rows, err
}
