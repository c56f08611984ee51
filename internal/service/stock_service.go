package service

import (
	"context"
	"errors"
	"fmt"

	"mykonos/internal/dto"
	"mykonos/internal/model"
	"mykonos/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockService keeps the web-exposed stock of a product consistent with the
// physical warehouse stock, per branch. Physical rows are read-only inputs;
// web_variants and their branch assignments belong exclusively to this engine.
type StockService interface {
	// EnsureWebVariantes lazily materializes a web variant for every distinct
	// (size, color) the product has physical stock in. Idempotent.
	EnsureWebVariantes(ctx context.Context, productID int) ([]model.WebVariante, error)

	// StockPorSucursal returns the per-branch breakdown: physical quantity
	// next to the web curation fields, plus group/provider names and the
	// effective discount.
	StockPorSucursal(ctx context.Context, productID int) ([]dto.SucursalConStockResponse, error)

	// StockWebPorSucursal returns only the web-assigned quantities for one
	// branch; ErrNoEncontrado when the branch does not exist.
	StockWebPorSucursal(ctx context.Context, productID, branchID int) ([]dto.SucursalConStockResponse, error)

	// AplicarVarianteTx applies one variant entry inside the caller's
	// transaction. An entry referencing a variant outside the product is
	// reported as not applied — never an error. A non-nil error means the
	// transaction must roll back.
	AplicarVarianteTx(tx *gorm.DB, productID int, input dto.VarianteUpdateInput) (dto.ResultadoVariante, error)

	// Reconciliar re-clamps every branch assignment of the product against
	// current physical stock. Run asynchronously after updates to narrow the
	// read-then-write window between clamp and commit.
	Reconciliar(ctx context.Context, productID int) error

	// DescuentoEfectivo resolves the discount shown for a product: the highest
	// active in-window discounts-table row, else the product's static
	// percentage, else zero.
	DescuentoEfectivo(ctx context.Context, productID int) (decimal.Decimal, error)
}

type stockService struct {
	repo      repository.StockRepository
	sucursal  repository.SucursalRepository
	producto  repository.ProductoRepository
	descuento repository.DescuentoRepository
	catalogo  repository.CatalogoRepository
}

func NewStockService(
	repo repository.StockRepository,
	sucursal repository.SucursalRepository,
	producto repository.ProductoRepository,
	descuento repository.DescuentoRepository,
	catalogo repository.CatalogoRepository,
) StockService {
	return &stockService{
		repo:      repo,
		sucursal:  sucursal,
		producto:  producto,
		descuento: descuento,
		catalogo:  catalogo,
	}
}

const (
	sinCategoria = "Sin categoría"
	sinProveedor = "Sin proveedor"
)

func (s *stockService) EnsureWebVariantes(ctx context.Context, productID int) ([]model.WebVariante, error) {
	keys, err := s.repo.DistinctVariantes(ctx, productID)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		if err := s.repo.EnsureWebVariante(ctx, productID, key); err != nil {
			return nil, err
		}
	}
	return s.repo.WebVariantesDeProducto(ctx, productID)
}

func (s *stockService) StockPorSucursal(ctx context.Context, productID int) ([]dto.SucursalConStockResponse, error) {
	if _, err := s.EnsureWebVariantes(ctx, productID); err != nil {
		return nil, err
	}

	filas, err := s.repo.StockPorSucursal(ctx, productID)
	if err != nil {
		return nil, err
	}

	descuento, err := s.DescuentoEfectivo(ctx, productID)
	if err != nil {
		return nil, err
	}
	groupName := s.lookupName(ctx, productID, s.catalogo.GroupName, sinCategoria)
	providerName := s.lookupName(ctx, productID, s.catalogo.ProviderName, sinProveedor)

	// Rows arrive ordered by branch id; group them preserving that order.
	var sucursales []dto.SucursalConStockResponse
	index := make(map[int]int)
	for _, fila := range filas {
		pos, ok := index[fila.BranchID]
		if !ok {
			sucursales = append(sucursales, dto.SucursalConStockResponse{
				BranchID:           fila.BranchID,
				BranchName:         fila.BranchName,
				GroupName:          groupName,
				ProviderName:       providerName,
				DiscountPercentage: descuento,
			})
			pos = len(sucursales) - 1
			index[fila.BranchID] = pos
		}
		barcode := fila.Barcode
		sucursales[pos].Variants = append(sucursales[pos].Variants, dto.VarianteSucursal{
			VariantID:    fila.VariantID,
			Size:         fila.Size,
			Color:        fila.Color,
			ColorHex:     fila.ColorHex,
			Quantity:     fila.Quantity,
			Barcode:      barcode,
			CantidadWeb:  fila.CantidadWeb,
			MostrarEnWeb: fila.MostrarEnWeb,
		})
	}
	return sucursales, nil
}

func (s *stockService) StockWebPorSucursal(ctx context.Context, productID, branchID int) ([]dto.SucursalConStockResponse, error) {
	sucursal, err := s.sucursal.FindByID(ctx, branchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sucursal %d: %w", branchID, ErrNoEncontrado)
		}
		return nil, err
	}

	filas, err := s.repo.StockWebPorSucursal(ctx, productID, branchID)
	if err != nil {
		return nil, err
	}

	variants := make([]dto.VarianteSucursal, 0, len(filas))
	for _, fila := range filas {
		variants = append(variants, dto.VarianteSucursal{
			VariantID:    fila.VariantID,
			Size:         fila.Size,
			Color:        fila.Color,
			ColorHex:     fila.ColorHex,
			Quantity:     fila.Quantity,
			Barcode:      nil, // branch assignments carry no barcode
			CantidadWeb:  fila.CantidadWeb,
			MostrarEnWeb: fila.MostrarEnWeb,
		})
	}

	return []dto.SucursalConStockResponse{{
		BranchID:   branchID,
		BranchName: sucursal.Name,
		Variants:   variants,
	}}, nil
}

func (s *stockService) AplicarVarianteTx(tx *gorm.DB, productID int, input dto.VarianteUpdateInput) (dto.ResultadoVariante, error) {
	resultado := dto.ResultadoVariante{VariantID: input.ID}

	wv, err := s.repo.FindWebVarianteTx(tx, input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resultado.Reason = "variante inexistente"
			return resultado, nil
		}
		return resultado, err
	}
	if wv.ProductID != productID {
		resultado.Reason = fmt.Sprintf("variante %d no pertenece al producto %d", input.ID, productID)
		return resultado, nil
	}

	key := repository.VarianteKey{SizeID: wv.SizeID, ColorID: wv.ColorID}
	total := 0
	clamped := 0
	asignaciones := make([]model.AsignacionSucursal, 0, len(input.ConfiguracionStock))
	for _, cfg := range input.ConfiguracionStock {
		fisico, err := s.repo.PhysicalQuantityTx(tx, productID, key, cfg.SucursalID)
		if err != nil {
			return resultado, err
		}
		cantidad := cfg.CantidadAsignada
		if cantidad > fisico {
			// Assigned web stock must never exceed what is on hand; reduce the
			// request instead of rejecting it.
			log.Warn().
				Int("variant_id", input.ID).
				Int("branch_id", cfg.SucursalID).
				Int("solicitado", cantidad).
				Int("fisico", fisico).
				Msg("cantidad asignada supera stock fisico, ajustando")
			cantidad = fisico
			clamped++
		}
		total += cantidad
		asignaciones = append(asignaciones, model.AsignacionSucursal{
			VariantID:        input.ID,
			BranchID:         cfg.SucursalID,
			CantidadAsignada: cantidad,
		})
	}

	if err := s.repo.ReplaceAsignacionesTx(tx, input.ID, asignaciones); err != nil {
		return resultado, err
	}
	if err := s.repo.UpdateWebVarianteTx(tx, input.ID, total, input.MostrarEnWeb); err != nil {
		return resultado, err
	}

	resultado.Applied = true
	resultado.AppliedTotal = total
	if clamped > 0 {
		resultado.Reason = fmt.Sprintf("%d asignaciones ajustadas al stock fisico", clamped)
	}
	return resultado, nil
}

// Reconciliar replays the clamp over current physical stock. Warehouse stock
// may have moved since the assignments were written; this sweep pulls the web
// figures back under the physical ceiling.
func (s *stockService) Reconciliar(ctx context.Context, productID int) error {
	variantes, err := s.repo.WebVariantesDeProducto(ctx, productID)
	if err != nil {
		return err
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, wv := range variantes {
			asignaciones, err := s.repo.AsignacionesPorVariante(ctx, wv.ID)
			if err != nil {
				return err
			}
			key := repository.VarianteKey{SizeID: wv.SizeID, ColorID: wv.ColorID}
			total := 0
			ajustada := false
			for i := range asignaciones {
				fisico, err := s.repo.PhysicalQuantityTx(tx, productID, key, asignaciones[i].BranchID)
				if err != nil {
					return err
				}
				if asignaciones[i].CantidadAsignada > fisico {
					log.Warn().
						Int("variant_id", wv.ID).
						Int("branch_id", asignaciones[i].BranchID).
						Int("asignado", asignaciones[i].CantidadAsignada).
						Int("fisico", fisico).
						Msg("reconciliacion: asignacion supera stock fisico")
					asignaciones[i].CantidadAsignada = fisico
					asignaciones[i].ID = 0
					ajustada = true
				}
				total += asignaciones[i].CantidadAsignada
			}
			if !ajustada {
				continue
			}
			if err := s.repo.ReplaceAsignacionesTx(tx, wv.ID, asignaciones); err != nil {
				return err
			}
			if err := s.repo.UpdateWebVarianteTx(tx, wv.ID, total, wv.IsActive); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *stockService) DescuentoEfectivo(ctx context.Context, productID int) (decimal.Decimal, error) {
	pct, err := s.descuento.MaxActivo(ctx, productID)
	if err != nil {
		return decimal.Zero, err
	}
	if pct.IsPositive() {
		return pct, nil
	}
	p, err := s.producto.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	if p.DiscountPercentage.IsPositive() {
		return p.DiscountPercentage, nil
	}
	return decimal.Zero, nil
}

// lookupName resolves an optional name column, falling back to a sentinel.
func (s *stockService) lookupName(ctx context.Context, productID int, fn func(context.Context, int) (*string, error), fallback string) string {
	name, err := fn(ctx, productID)
	if err != nil || name == nil || *name == "" {
		return fallback
	}
	return *name
}
