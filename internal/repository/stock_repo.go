package repository

import (
	"context"

	"mykonos/internal/model"

	"gorm.io/gorm"
)

// VarianteKey identifies a (size, color) combination. Either side may be NULL
// for products tracked without that dimension.
type VarianteKey struct {
	SizeID  *int
	ColorID *int
}

// FilaStockSucursal is one row of the per-branch stock breakdown: physical
// quantity next to the web curation fields for the same (size, color).
type FilaStockSucursal struct {
	BranchID     int
	BranchName   string
	VariantID    int
	Size         *string
	Color        *string
	ColorHex     *string
	Quantity     int
	Barcode      *string
	CantidadWeb  int
	MostrarEnWeb bool
}

// StockRepository is the data access contract of the web-stock engine.
// Physical stock (warehouse_stock_variants) is strictly read-only here;
// web_variants and their branch assignments are owned by this layer.
type StockRepository interface {
	DistinctVariantes(ctx context.Context, productID int) ([]VarianteKey, error)
	EnsureWebVariante(ctx context.Context, productID int, key VarianteKey) error
	WebVariantesDeProducto(ctx context.Context, productID int) ([]model.WebVariante, error)
	StockPorSucursal(ctx context.Context, productID int) ([]FilaStockSucursal, error)
	StockWebPorSucursal(ctx context.Context, productID, branchID int) ([]FilaStockSucursal, error)
	FindWebVariante(ctx context.Context, id int) (*model.WebVariante, error)

	// Tx variants run inside the product-update transaction — callers own the tx.
	FindWebVarianteTx(tx *gorm.DB, id int) (*model.WebVariante, error)
	PhysicalQuantityTx(tx *gorm.DB, productID int, key VarianteKey, branchID int) (int, error)
	ReplaceAsignacionesTx(tx *gorm.DB, variantID int, asignaciones []model.AsignacionSucursal) error
	UpdateWebVarianteTx(tx *gorm.DB, id, displayedStock int, isActive bool) error
	AsignacionesPorVariante(ctx context.Context, variantID int) ([]model.AsignacionSucursal, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) DistinctVariantes(ctx context.Context, productID int) ([]VarianteKey, error) {
	var keys []VarianteKey
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT wsv.size_id, wsv.color_id
		FROM warehouse_stock_variants wsv
		WHERE wsv.product_id = ?`, productID).Scan(&keys).Error
	return keys, err
}

// EnsureWebVariante inserts the web projection of a (size, color) combination
// if absent. NULL dimensions compare equal here, so repeated calls never
// duplicate a dimensionless variant. Existing rows keep their curated
// displayed_stock and is_active.
func (r *stockRepo) EnsureWebVariante(ctx context.Context, productID int, key VarianteKey) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO web_variants (product_id, size_id, color_id, displayed_stock, is_active)
		SELECT ?, ?, ?, 0, TRUE
		WHERE NOT EXISTS (
			SELECT 1 FROM web_variants
			WHERE product_id = ?
			  AND size_id  IS NOT DISTINCT FROM ?
			  AND color_id IS NOT DISTINCT FROM ?
		)`, productID, key.SizeID, key.ColorID,
		productID, key.SizeID, key.ColorID).Error
}

func (r *stockRepo) WebVariantesDeProducto(ctx context.Context, productID int) ([]model.WebVariante, error) {
	var variantes []model.WebVariante
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&variantes).Error
	return variantes, err
}

func (r *stockRepo) StockPorSucursal(ctx context.Context, productID int) ([]FilaStockSucursal, error) {
	var filas []FilaStockSucursal
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id                AS branch_id,
			s.name              AS branch_name,
			wv.id               AS variant_id,
			sz.size_name        AS size,
			c.color_name        AS color,
			c.color_hex         AS color_hex,
			wsv.quantity        AS quantity,
			wsv.variant_barcode AS barcode,
			wv.displayed_stock  AS cantidad_web,
			wv.is_active        AS mostrar_en_web
		FROM warehouse_stock_variants wsv
		JOIN storage s  ON wsv.branch_id = s.id
		LEFT JOIN sizes sz  ON wsv.size_id = sz.id
		LEFT JOIN colors c  ON wsv.color_id = c.id
		JOIN web_variants wv
			ON  wv.product_id = wsv.product_id
			AND wv.size_id  IS NOT DISTINCT FROM wsv.size_id
			AND wv.color_id IS NOT DISTINCT FROM wsv.color_id
		WHERE wsv.product_id = ?
		ORDER BY s.id, sz.size_name NULLS LAST, c.color_name NULLS LAST`,
		productID).Scan(&filas).Error
	return filas, err
}

func (r *stockRepo) StockWebPorSucursal(ctx context.Context, productID, branchID int) ([]FilaStockSucursal, error) {
	var filas []FilaStockSucursal
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			wv.id                              AS variant_id,
			sz.size_name                       AS size,
			c.color_name                       AS color,
			c.color_hex                        AS color_hex,
			COALESCE(wvba.cantidad_asignada, 0) AS quantity,
			wv.displayed_stock                 AS cantidad_web,
			wv.is_active                       AS mostrar_en_web
		FROM web_variants wv
		LEFT JOIN web_variant_branch_assignment wvba
			ON wv.id = wvba.variant_id AND wvba.branch_id = ?
		LEFT JOIN sizes sz ON wv.size_id = sz.id
		LEFT JOIN colors c ON wv.color_id = c.id
		WHERE wv.product_id = ?
		ORDER BY sz.size_name NULLS LAST, c.color_name NULLS LAST`,
		branchID, productID).Scan(&filas).Error
	return filas, err
}

func (r *stockRepo) FindWebVariante(ctx context.Context, id int) (*model.WebVariante, error) {
	var wv model.WebVariante
	err := r.db.WithContext(ctx).First(&wv, id).Error
	return &wv, err
}

func (r *stockRepo) FindWebVarianteTx(tx *gorm.DB, id int) (*model.WebVariante, error) {
	var wv model.WebVariante
	err := tx.First(&wv, id).Error
	return &wv, err
}

// PhysicalQuantityTx reads the on-hand quantity at one branch for the variant's
// (size, color). IS NOT DISTINCT FROM makes NULL dimensions match NULL.
func (r *stockRepo) PhysicalQuantityTx(tx *gorm.DB, productID int, key VarianteKey, branchID int) (int, error) {
	var quantity int
	err := tx.Raw(`
		SELECT COALESCE(SUM(quantity), 0)
		FROM warehouse_stock_variants
		WHERE product_id = ?
		  AND size_id  IS NOT DISTINCT FROM ?
		  AND color_id IS NOT DISTINCT FROM ?
		  AND branch_id = ?`,
		productID, key.SizeID, key.ColorID, branchID).Scan(&quantity).Error
	return quantity, err
}

// ReplaceAsignacionesTx swaps the full assignment set of a variant: prior rows
// are deleted before the new (already clamped) rows are inserted.
func (r *stockRepo) ReplaceAsignacionesTx(tx *gorm.DB, variantID int, asignaciones []model.AsignacionSucursal) error {
	if err := tx.Where("variant_id = ?", variantID).
		Delete(&model.AsignacionSucursal{}).Error; err != nil {
		return err
	}
	if len(asignaciones) == 0 {
		return nil
	}
	return tx.Create(&asignaciones).Error
}

func (r *stockRepo) UpdateWebVarianteTx(tx *gorm.DB, id, displayedStock int, isActive bool) error {
	return tx.Model(&model.WebVariante{}).Where("id = ?", id).Updates(map[string]interface{}{
		"displayed_stock": displayedStock,
		"is_active":       isActive,
	}).Error
}

func (r *stockRepo) AsignacionesPorVariante(ctx context.Context, variantID int) ([]model.AsignacionSucursal, error) {
	var asignaciones []model.AsignacionSucursal
	err := r.db.WithContext(ctx).
		Where("variant_id = ?", variantID).
		Order("branch_id ASC").
		Find(&asignaciones).Error
	return asignaciones, err
}

func (r *stockRepo) DB() *gorm.DB { return r.db }
