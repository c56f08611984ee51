package infra

import (
	"fmt"

	"mykonos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// over every model, then applies the idempotent DDL that GORM cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates/updates all tables. Shared with integration tests.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Grupo{},
		&model.Entidad{},
		&model.Talle{},
		&model.Color{},
		&model.Producto{},
		&model.ProductoTalle{},
		&model.ProductoColor{},
		&model.Imagen{},
		&model.Descuento{},
		&model.Sucursal{},
		&model.StockVariante{},
		&model.WebVariante{},
		&model.AsignacionSucursal{},
		&model.WebUser{},
		&model.Venta{},
		&model.VentaDetalle{},
		&model.Carrito{},
		&model.CarritoItem{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Slug uniqueness only applies among online products; a retired product
		// may keep its slug without blocking reuse.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_products_slug_online') THEN
		    CREATE UNIQUE INDEX idx_products_slug_online
		        ON products (slug)
		        WHERE en_tienda_online = TRUE AND slug IS NOT NULL;
		  END IF;
		END $$`,
		// AutoMigrate builds idx_web_variante with default NULLS DISTINCT
		// semantics, under which every dimensionless variant insert is "new".
		// Rebuild it so NULL size/color collide like equal values do.
		`DO $$ BEGIN
		  IF NOT EXISTS (
		    SELECT 1 FROM pg_indexes
		    WHERE indexname = 'idx_web_variante'
		      AND indexdef LIKE '%NULLS NOT DISTINCT%'
		  ) THEN
		    DROP INDEX IF EXISTS idx_web_variante;
		    CREATE UNIQUE INDEX idx_web_variante
		        ON web_variants (product_id, size_id, color_id) NULLS NOT DISTINCT;
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("schema patch: %w", err)
		}
	}
	return nil
}
