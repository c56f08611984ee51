package repository

import (
	"context"

	"mykonos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductoTiendaRow is the flat product row of a storefront query; images,
// stock and variants are aggregated separately per product.
type ProductoTiendaRow struct {
	ID             int
	NombreWeb      *string
	DescripcionWeb *string
	PrecioWeb      *decimal.Decimal
	Slug           *string
	Category       string
	// Static fallback used when no discounts-table row is effective.
	DiscountPercentage decimal.Decimal
}

// VarianteTiendaRow is one variant line of a storefront product.
type VarianteTiendaRow struct {
	VariantID int
	Talle     *string
	Color     *string
	ColorHex  *string
	Stock     int
	Barcode   *string
}

// ColorRow mirrors the distinct-colors lookup of the detail view.
type ColorRow struct {
	ID        int
	ColorName string
	ColorHex  *string
}

// CatalogoRepository serves the read side of the storefront: online-only
// listing rows, per-product aggregates, and code resolution.
type CatalogoRepository interface {
	ListOnline(ctx context.Context, groupIDs []int, limit, offset int) ([]ProductoTiendaRow, error)
	FindOnlineByID(ctx context.Context, id int) (*ProductoTiendaRow, error)
	FindOnlineBySlug(ctx context.Context, slug string) (*ProductoTiendaRow, error)

	ImagesByProduct(ctx context.Context, productID int) ([]string, error)

	// Global mode: the curated web figures, no branch dimension.
	StockGlobal(ctx context.Context, productID int) (int, error)
	VariantesGlobal(ctx context.Context, productID int) ([]VarianteTiendaRow, error)

	// Branch mode: physical stock at one branch, hidden variants excluded.
	StockEnSucursal(ctx context.Context, productID, branchID int) (int, error)
	VariantesEnSucursal(ctx context.Context, productID, branchID int) ([]VarianteTiendaRow, error)

	ColoresDeProducto(ctx context.Context, productID int) ([]ColorRow, error)
	TallesDeProducto(ctx context.Context, productID int) ([]string, error)

	GroupName(ctx context.Context, productID int) (*string, error)
	ProviderName(ctx context.Context, productID int) (*string, error)

	// Code resolution: variant barcode first, then product provider code.
	ProductIDByBarcode(ctx context.Context, barcode string) (int, error)
	FindByProviderCode(ctx context.Context, code string) (int, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

const productoTiendaSelect = `
	SELECT
		p.id,
		p.nombre_web,
		p.descripcion_web,
		p.precio_web,
		p.slug,
		COALESCE(g.group_name, 'Sin categoría') AS category,
		p.discount_percentage
	FROM products p
	LEFT JOIN groups g ON p.group_id = g.id
	WHERE p.en_tienda_online = TRUE`

func (r *catalogoRepo) ListOnline(ctx context.Context, groupIDs []int, limit, offset int) ([]ProductoTiendaRow, error) {
	var rows []ProductoTiendaRow
	q := productoTiendaSelect
	args := []interface{}{}
	if len(groupIDs) > 0 {
		q += " AND p.group_id IN ?"
		args = append(args, groupIDs)
	}
	q += " ORDER BY p.id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)
	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error
	return rows, err
}

func (r *catalogoRepo) FindOnlineByID(ctx context.Context, id int) (*ProductoTiendaRow, error) {
	var row ProductoTiendaRow
	res := r.db.WithContext(ctx).Raw(productoTiendaSelect+" AND p.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *catalogoRepo) FindOnlineBySlug(ctx context.Context, slug string) (*ProductoTiendaRow, error) {
	var row ProductoTiendaRow
	res := r.db.WithContext(ctx).Raw(productoTiendaSelect+" AND p.slug = ?", slug).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *catalogoRepo) ImagesByProduct(ctx context.Context, productID int) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).Model(&model.Imagen{}).
		Where("product_id = ?", productID).
		Order("id ASC").
		Pluck("image_url", &urls).Error
	return urls, err
}

func (r *catalogoRepo) StockGlobal(ctx context.Context, productID int) (int, error) {
	var stock int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(displayed_stock), 0)
		FROM web_variants
		WHERE product_id = ? AND is_active = TRUE`, productID).Scan(&stock).Error
	return stock, err
}

func (r *catalogoRepo) VariantesGlobal(ctx context.Context, productID int) ([]VarianteTiendaRow, error) {
	var rows []VarianteTiendaRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			wv.id              AS variant_id,
			sz.size_name       AS talle,
			c.color_name       AS color,
			c.color_hex        AS color_hex,
			wv.displayed_stock AS stock,
			NULL               AS barcode
		FROM web_variants wv
		LEFT JOIN sizes sz ON wv.size_id = sz.id
		LEFT JOIN colors c ON wv.color_id = c.id
		WHERE wv.product_id = ? AND wv.is_active = TRUE
		ORDER BY sz.size_name NULLS LAST, c.color_name NULLS LAST`,
		productID).Scan(&rows).Error
	return rows, err
}

func (r *catalogoRepo) StockEnSucursal(ctx context.Context, productID, branchID int) (int, error) {
	var stock int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(wsv.quantity), 0)
		FROM warehouse_stock_variants wsv
		JOIN web_variants wv
			ON  wv.product_id = wsv.product_id
			AND wv.size_id  IS NOT DISTINCT FROM wsv.size_id
			AND wv.color_id IS NOT DISTINCT FROM wsv.color_id
		WHERE wsv.product_id = ? AND wsv.branch_id = ? AND wv.is_active = TRUE`,
		productID, branchID).Scan(&stock).Error
	return stock, err
}

func (r *catalogoRepo) VariantesEnSucursal(ctx context.Context, productID, branchID int) ([]VarianteTiendaRow, error) {
	var rows []VarianteTiendaRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			wv.id               AS variant_id,
			sz.size_name        AS talle,
			c.color_name        AS color,
			c.color_hex         AS color_hex,
			wsv.quantity        AS stock,
			wsv.variant_barcode AS barcode
		FROM warehouse_stock_variants wsv
		JOIN web_variants wv
			ON  wv.product_id = wsv.product_id
			AND wv.size_id  IS NOT DISTINCT FROM wsv.size_id
			AND wv.color_id IS NOT DISTINCT FROM wsv.color_id
		LEFT JOIN sizes sz ON wsv.size_id = sz.id
		LEFT JOIN colors c ON wsv.color_id = c.id
		WHERE wsv.product_id = ? AND wsv.branch_id = ? AND wv.is_active = TRUE
		ORDER BY sz.size_name NULLS LAST, c.color_name NULLS LAST`,
		productID, branchID).Scan(&rows).Error
	return rows, err
}

func (r *catalogoRepo) ColoresDeProducto(ctx context.Context, productID int) ([]ColorRow, error) {
	var rows []ColorRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT c.id, c.color_name, c.color_hex
		FROM product_colors pc
		JOIN colors c ON pc.color_id = c.id
		WHERE pc.product_id = ?
		ORDER BY c.color_name`, productID).Scan(&rows).Error
	return rows, err
}

func (r *catalogoRepo) TallesDeProducto(ctx context.Context, productID int) ([]string, error) {
	var talles []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT s.size_name
		FROM product_sizes ps
		JOIN sizes s ON ps.size_id = s.id
		WHERE ps.product_id = ?
		ORDER BY s.size_name`, productID).Scan(&talles).Error
	return talles, err
}

func (r *catalogoRepo) GroupName(ctx context.Context, productID int) (*string, error) {
	var name *string
	err := r.db.WithContext(ctx).Raw(`
		SELECT g.group_name
		FROM products p
		LEFT JOIN groups g ON p.group_id = g.id
		WHERE p.id = ?`, productID).Scan(&name).Error
	return name, err
}

func (r *catalogoRepo) ProviderName(ctx context.Context, productID int) (*string, error) {
	var name *string
	err := r.db.WithContext(ctx).Raw(`
		SELECT e.entity_name
		FROM products p
		LEFT JOIN entities e ON p.provider_id = e.id
		WHERE p.id = ?`, productID).Scan(&name).Error
	return name, err
}

func (r *catalogoRepo) ProductIDByBarcode(ctx context.Context, barcode string) (int, error) {
	var sv model.StockVariante
	err := r.db.WithContext(ctx).
		Where("variant_barcode = ?", barcode).
		First(&sv).Error
	if err != nil {
		return 0, err
	}
	return sv.ProductID, nil
}

func (r *catalogoRepo) FindByProviderCode(ctx context.Context, code string) (int, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Where("provider_code = ?", code).
		First(&p).Error
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}
