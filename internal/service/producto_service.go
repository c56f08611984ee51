package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mykonos/internal/dto"
	"mykonos/internal/model"
	"mykonos/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReconciliacionQueue enqueues a product for an asynchronous stock sweep.
// Implemented by the redis-backed worker dispatcher; a nil queue disables the
// sweep (unit tests, degraded mode without redis).
type ReconciliacionQueue interface {
	Encolar(ctx context.Context, productID int) error
}

// ProductoService covers the back-office lifecycle: create, list, partial
// update with discount and variant coordination, retire, and image management.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)

	// Actualizar applies a sparse payload atomically: column changes, discount
	// upsert/deactivation and the variant batch commit or roll back together.
	// A payload touching nothing is rejected with ErrSinCampos.
	Actualizar(ctx context.Context, id int, req dto.ActualizarProductoRequest) (*dto.ActualizarProductoResponse, error)

	Eliminar(ctx context.Context, id int) error
	AgregarImagen(ctx context.Context, productID int, req dto.AgregarImagenRequest) (*dto.ImagenResponse, error)
	EliminarImagen(ctx context.Context, productID, imageID int) error
}

type productoService struct {
	repo      repository.ProductoRepository
	imagenes  repository.ImagenRepository
	descuento repository.DescuentoRepository
	stock     StockService
	cola      ReconciliacionQueue
}

func NewProductoService(
	repo repository.ProductoRepository,
	imagenes repository.ImagenRepository,
	descuento repository.DescuentoRepository,
	stock StockService,
	cola ReconciliacionQueue,
) ProductoService {
	return &productoService{
		repo:      repo,
		imagenes:  imagenes,
		descuento: descuento,
		stock:     stock,
		cola:      cola,
	}
}

var cien = decimal.NewFromInt(100)

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if req.Discount.IsNegative() || req.Discount.GreaterThanOrEqual(cien) {
		return nil, fmt.Errorf("descuento fuera de rango [0, 100): %w", ErrValidacion)
	}
	if req.EnTiendaOnline && req.Slug != nil && *req.Slug != "" {
		enUso, err := s.repo.SlugEnUso(ctx, *req.Slug, 0)
		if err != nil {
			return nil, err
		}
		if enUso {
			return nil, fmt.Errorf("slug %q ya esta en uso: %w", *req.Slug, ErrValidacion)
		}
	}

	state := req.State
	if state == "" {
		state = "active"
	}
	p := model.Producto{
		ProductName:    req.ProductName,
		Description:    req.Description,
		Cost:           req.Cost,
		SalePrice:      req.SalePrice,
		ProviderCode:   req.ProviderCode,
		GroupID:        req.GroupID,
		ProviderID:     req.ProviderID,
		BrandID:        req.BrandID,
		Tax:            req.Tax,
		Discount:       req.Discount,
		Comments:       req.Comments,
		State:          state,
		EnTiendaOnline: req.EnTiendaOnline,
		NombreWeb:      req.NombreWeb,
		DescripcionWeb: req.DescripcionWeb,
		Slug:           req.Slug,
		PrecioWeb:      req.PrecioWeb,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id int) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("producto %d: %w", id, ErrNoEncontrado)
		}
		return nil, err
	}
	resp := toProductoResponse(*p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		data = append(data, toProductoResponse(p))
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}
	return &dto.ProductoListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id int, req dto.ActualizarProductoRequest) (*dto.ActualizarProductoResponse, error) {
	campos := buildCampos(req)
	tieneDescuento := req.DiscountPercentage != nil
	if len(campos) == 0 && !tieneDescuento && len(req.Variantes) == 0 {
		return nil, ErrSinCampos
	}

	if req.DiscountPercentage != nil {
		pct := *req.DiscountPercentage
		if pct.IsNegative() || pct.GreaterThanOrEqual(cien) {
			return nil, fmt.Errorf("descuento fuera de rango [0, 100): %w", ErrValidacion)
		}
	}
	if req.Slug != nil && *req.Slug != "" {
		enUso, err := s.repo.SlugEnUso(ctx, *req.Slug, id)
		if err != nil {
			return nil, err
		}
		if enUso {
			return nil, fmt.Errorf("slug %q ya esta en uso: %w", *req.Slug, ErrValidacion)
		}
	}

	var resultados []dto.ResultadoVariante
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.FindByIDTx(tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("producto %d: %w", id, ErrNoEncontrado)
			}
			return err
		}

		if len(campos) > 0 {
			campos["last_modified_date"] = time.Now()
			if err := s.repo.UpdateCamposTx(tx, id, campos); err != nil {
				return err
			}
		}

		if req.DiscountPercentage != nil {
			if err := s.aplicarDescuentoTx(tx, id, req); err != nil {
				return err
			}
		}

		for _, v := range req.Variantes {
			resultado, err := s.stock.AplicarVarianteTx(tx, id, v)
			if err != nil {
				return err
			}
			if !resultado.Applied {
				log.Warn().
					Int("product_id", id).
					Int("variant_id", v.ID).
					Str("reason", resultado.Reason).
					Msg("entrada de variante omitida")
			}
			resultados = append(resultados, resultado)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(req.Variantes) > 0 && s.cola != nil {
		// Physical stock may move between the in-tx clamp and the commit; the
		// sweep re-applies the ceiling shortly after.
		if err := s.cola.Encolar(ctx, id); err != nil {
			log.Error().Err(err).Int("product_id", id).Msg("no se pudo encolar la reconciliacion")
		}
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resultados == nil {
		resultados = []dto.ResultadoVariante{}
	}
	return &dto.ActualizarProductoResponse{
		Producto:  toProductoResponse(*p),
		Variantes: resultados,
	}, nil
}

// aplicarDescuentoTx coordinates the discounts table with the update: a
// positive percentage upserts the product's active row (refreshing the
// window), zero deactivates whatever is active.
func (s *productoService) aplicarDescuentoTx(tx *gorm.DB, productID int, req dto.ActualizarProductoRequest) error {
	pct := *req.DiscountPercentage
	if pct.IsZero() {
		return s.descuento.DeactivateTx(tx, productID, time.Now())
	}

	activo, err := s.descuento.FindActivoTx(tx, productID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.descuento.CreateTx(tx, &model.Descuento{
			DiscountType:       repository.TipoDescuentoProducto,
			TargetID:           productID,
			DiscountPercentage: pct,
			StartDate:          req.DiscountStartDate,
			EndDate:            req.DiscountEndDate,
			IsActive:           true,
		})
	}

	campos := map[string]interface{}{"discount_percentage": pct}
	if req.DiscountStartDate != nil {
		campos["start_date"] = *req.DiscountStartDate
	}
	if req.DiscountEndDate != nil {
		campos["end_date"] = *req.DiscountEndDate
	}
	return s.descuento.UpdateTx(tx, activo.ID, campos)
}

func (s *productoService) Eliminar(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("producto %d: %w", id, ErrNoEncontrado)
		}
		return err
	}
	// Sales keep denormalized snapshots, so a hard delete never orphans order
	// history; still, retiring via en_tienda_online=false is the common path.
	return s.repo.Delete(ctx, id)
}

func (s *productoService) AgregarImagen(ctx context.Context, productID int, req dto.AgregarImagenRequest) (*dto.ImagenResponse, error) {
	if _, err := s.repo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("producto %d: %w", productID, ErrNoEncontrado)
		}
		return nil, err
	}
	img := model.Imagen{ProductID: productID, ImageURL: req.ImageURL}
	if err := s.imagenes.Create(ctx, &img); err != nil {
		return nil, err
	}
	return &dto.ImagenResponse{ID: img.ID, ProductID: img.ProductID, ImageURL: img.ImageURL}, nil
}

func (s *productoService) EliminarImagen(ctx context.Context, productID, imageID int) error {
	img, err := s.imagenes.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("imagen %d: %w", imageID, ErrNoEncontrado)
		}
		return err
	}
	if img.ProductID != productID {
		return fmt.Errorf("imagen %d no pertenece al producto %d: %w", imageID, productID, ErrNoEncontrado)
	}
	return s.imagenes.Delete(ctx, imageID)
}

// buildCampos maps only the fields present in the payload to their columns.
// Discount and variant handling never appear here — they write other tables.
func buildCampos(req dto.ActualizarProductoRequest) map[string]interface{} {
	campos := make(map[string]interface{})
	if req.Nombre != nil {
		campos["nombre_web"] = *req.Nombre
	}
	if req.Descripcion != nil {
		campos["descripcion_web"] = *req.Descripcion
	}
	if req.PrecioWeb != nil {
		campos["precio_web"] = *req.PrecioWeb
	}
	if req.EnTiendaOnline != nil {
		campos["en_tienda_online"] = *req.EnTiendaOnline
	}
	if req.Slug != nil {
		campos["slug"] = *req.Slug
	}
	return campos
}

func toProductoResponse(p model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:               p.ID,
		ProductName:      p.ProductName,
		Description:      p.Description,
		Cost:             p.Cost,
		SalePrice:        p.SalePrice,
		ProviderCode:     p.ProviderCode,
		GroupID:          p.GroupID,
		ProviderID:       p.ProviderID,
		BrandID:          p.BrandID,
		Tax:              p.Tax,
		Discount:         p.Discount,
		Comments:         p.Comments,
		State:            p.State,
		EnTiendaOnline:   p.EnTiendaOnline,
		NombreWeb:        p.NombreWeb,
		DescripcionWeb:   p.DescripcionWeb,
		Slug:             p.Slug,
		PrecioWeb:        p.PrecioWeb,
		CreationDate:     p.CreationDate,
		LastModifiedDate: p.LastModifiedDate,
	}
}
