package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mykonos/internal/dto"
	"mykonos/internal/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CatalogoService builds the denormalized storefront views: listings, product
// detail, slug lookup and code resolution. Listings come in two stock modes —
// global (curated web figures) and branch (physical stock at one branch,
// hidden variants excluded).
type CatalogoService interface {
	ListarTienda(ctx context.Context, filter dto.TiendaFilter) ([]dto.ProductoTiendaResponse, error)
	DetalleProducto(ctx context.Context, productID int, sucursalID *int) (*dto.DetalleProductoResponse, error)
	PorSlug(ctx context.Context, slug string) (*dto.ProductoTiendaResponse, error)
	BuscarPorCodigo(ctx context.Context, codigo string) (int, error)
}

type catalogoService struct {
	repo     repository.CatalogoRepository
	stock    StockService
	grupo    GrupoService
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewCatalogoService builds the storefront read side. A nil redis client or a
// non-positive cacheTTL disables the listing cache.
func NewCatalogoService(
	repo repository.CatalogoRepository,
	stock StockService,
	grupo GrupoService,
	rdb *redis.Client,
	cacheTTL time.Duration,
) CatalogoService {
	return &catalogoService{repo: repo, stock: stock, grupo: grupo, rdb: rdb, cacheTTL: cacheTTL}
}

func (s *catalogoService) cacheEnabled() bool {
	return s.rdb != nil && s.cacheTTL > 0
}

func (s *catalogoService) ListarTienda(ctx context.Context, filter dto.TiendaFilter) ([]dto.ProductoTiendaResponse, error) {
	cacheKey := tiendaCacheKey(filter)
	if s.cacheEnabled() {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp []dto.ProductoTiendaResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return resp, nil
			}
		}
	}

	var groupIDs []int
	if filter.Category != "" {
		ids, err := s.grupo.ExpandirGrupo(ctx, filter.Category)
		if err != nil {
			return nil, err
		}
		// Unknown category: empty listing, not an error.
		if len(ids) == 0 {
			return []dto.ProductoTiendaResponse{}, nil
		}
		groupIDs = ids
	}

	rows, err := s.repo.ListOnline(ctx, groupIDs, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ProductoTiendaResponse, 0, len(rows))
	for _, row := range rows {
		producto, err := s.armarProducto(ctx, row, filter.SucursalID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, *producto)
	}

	if s.cacheEnabled() {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			// Best effort — a cold cache only costs latency.
			_ = s.rdb.Set(context.Background(), cacheKey, b, s.cacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *catalogoService) DetalleProducto(ctx context.Context, productID int, sucursalID *int) (*dto.DetalleProductoResponse, error) {
	row, err := s.repo.FindOnlineByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("producto %d: %w", productID, ErrNoEncontrado)
		}
		return nil, err
	}

	producto, err := s.armarProducto(ctx, *row, sucursalID)
	if err != nil {
		return nil, err
	}

	colores, err := s.repo.ColoresDeProducto(ctx, productID)
	if err != nil {
		return nil, err
	}
	talles, err := s.repo.TallesDeProducto(ctx, productID)
	if err != nil {
		return nil, err
	}

	detalle := &dto.DetalleProductoResponse{
		ProductoTiendaResponse: *producto,
		Colores:                make([]dto.ColorTienda, 0, len(colores)),
		Talles:                 talles,
	}
	for _, c := range colores {
		detalle.Colores = append(detalle.Colores, dto.ColorTienda{
			ID:     c.ID,
			Nombre: c.ColorName,
			Hex:    c.ColorHex,
		})
	}
	if detalle.Talles == nil {
		detalle.Talles = []string{}
	}
	return detalle, nil
}

func (s *catalogoService) PorSlug(ctx context.Context, slug string) (*dto.ProductoTiendaResponse, error) {
	row, err := s.repo.FindOnlineBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("slug %q: %w", slug, ErrNoEncontrado)
		}
		return nil, err
	}
	return s.armarProducto(ctx, *row, nil)
}

// BuscarPorCodigo resolves a scanned or typed code: variant barcode first
// (trimmed, exact), then the product-level provider code.
func (s *catalogoService) BuscarPorCodigo(ctx context.Context, codigo string) (int, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return 0, fmt.Errorf("codigo vacio: %w", ErrValidacion)
	}

	if id, err := s.repo.ProductIDByBarcode(ctx, codigo); err == nil {
		return id, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	id, err := s.repo.FindByProviderCode(ctx, codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("codigo %q: %w", codigo, ErrNoEncontrado)
		}
		return 0, err
	}
	return id, nil
}

// armarProducto fills the shared per-product shape: images, stock and variant
// list per mode, and the effective discount.
func (s *catalogoService) armarProducto(ctx context.Context, row repository.ProductoTiendaRow, sucursalID *int) (*dto.ProductoTiendaResponse, error) {
	images, err := s.repo.ImagesByProduct(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []string{}
	}

	var stock int
	var filas []repository.VarianteTiendaRow
	if sucursalID != nil {
		stock, err = s.repo.StockEnSucursal(ctx, row.ID, *sucursalID)
		if err != nil {
			return nil, err
		}
		filas, err = s.repo.VariantesEnSucursal(ctx, row.ID, *sucursalID)
	} else {
		stock, err = s.repo.StockGlobal(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		filas, err = s.repo.VariantesGlobal(ctx, row.ID)
	}
	if err != nil {
		return nil, err
	}

	descuento, err := s.stock.DescuentoEfectivo(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	variantes := make([]dto.VarianteTienda, 0, len(filas))
	for _, fila := range filas {
		variantes = append(variantes, dto.VarianteTienda{
			VariantID: fila.VariantID,
			Talle:     fila.Talle,
			Color:     fila.Color,
			ColorHex:  fila.ColorHex,
			Stock:     fila.Stock,
			Barcode:   fila.Barcode,
		})
	}

	return &dto.ProductoTiendaResponse{
		ID:                 row.ID,
		NombreWeb:          row.NombreWeb,
		DescripcionWeb:     row.DescripcionWeb,
		PrecioWeb:          row.PrecioWeb,
		Slug:               row.Slug,
		Category:           row.Category,
		Images:             images,
		StockDisponible:    stock,
		DiscountPercentage: descuento,
		Variantes:          variantes,
	}, nil
}

func tiendaCacheKey(filter dto.TiendaFilter) string {
	sucursal := 0
	if filter.SucursalID != nil {
		sucursal = *filter.SucursalID
	}
	return fmt.Sprintf("tienda:%s:%d:%d:%d", filter.Category, sucursal, filter.Limit, filter.Offset)
}
