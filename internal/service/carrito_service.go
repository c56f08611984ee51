package service

import (
	"context"
	"errors"
	"fmt"

	"mykonos/internal/dto"
	"mykonos/internal/model"
	"mykonos/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CarritoService manages the active cart of a web user. Quantities reference
// web variants and are clamped to displayed stock — the cart can never promise
// more than the storefront advertises.
type CarritoService interface {
	ObtenerCarrito(ctx context.Context, webUserID int) (*dto.CarritoResponse, error)
	AgregarItem(ctx context.Context, webUserID int, req dto.AgregarItemRequest) (*dto.CarritoResponse, error)
	ActualizarItem(ctx context.Context, webUserID, itemID int, req dto.ActualizarItemRequest) (*dto.CarritoResponse, error)
	EliminarItem(ctx context.Context, webUserID, itemID int) (*dto.CarritoResponse, error)
	Vaciar(ctx context.Context, webUserID int) error
}

type carritoService struct {
	repo  repository.CarritoRepository
	stock repository.StockRepository
}

func NewCarritoService(repo repository.CarritoRepository, stock repository.StockRepository) CarritoService {
	return &carritoService{repo: repo, stock: stock}
}

// activo returns the user's active cart, creating one on first use.
func (s *carritoService) activo(ctx context.Context, webUserID int) (*model.Carrito, error) {
	c, err := s.repo.FindActivo(ctx, webUserID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	nuevo := &model.Carrito{WebUserID: webUserID, Status: "active"}
	if err := s.repo.Create(ctx, nuevo); err != nil {
		return nil, err
	}
	return nuevo, nil
}

func (s *carritoService) ObtenerCarrito(ctx context.Context, webUserID int) (*dto.CarritoResponse, error) {
	c, err := s.activo(ctx, webUserID)
	if err != nil {
		return nil, err
	}
	return s.armarCarrito(ctx, c.ID, 0)
}

func (s *carritoService) AgregarItem(ctx context.Context, webUserID int, req dto.AgregarItemRequest) (*dto.CarritoResponse, error) {
	c, err := s.activo(ctx, webUserID)
	if err != nil {
		return nil, err
	}

	wv, err := s.stock.FindWebVariante(ctx, req.VariantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("variante %d: %w", req.VariantID, ErrNoEncontrado)
		}
		return nil, err
	}
	if !wv.IsActive || wv.DisplayedStock <= 0 {
		return nil, fmt.Errorf("variante %d sin stock disponible: %w", req.VariantID, ErrValidacion)
	}

	cantidad := req.Cantidad
	existente, err := s.repo.FindItem(ctx, c.ID, req.VariantID)
	if err == nil {
		cantidad += existente.Quantity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	clampedID := 0
	if cantidad > wv.DisplayedStock {
		log.Warn().
			Int("variant_id", req.VariantID).
			Int("solicitado", cantidad).
			Int("disponible", wv.DisplayedStock).
			Msg("cantidad de carrito ajustada al stock publicado")
		cantidad = wv.DisplayedStock
		clampedID = req.VariantID
	}

	if existente != nil && existente.ID != 0 {
		if err := s.repo.UpdateItemCantidad(ctx, existente.ID, cantidad); err != nil {
			return nil, err
		}
	} else {
		item := model.CarritoItem{CartID: c.ID, VariantID: req.VariantID, Quantity: cantidad}
		if err := s.repo.AddItem(ctx, &item); err != nil {
			return nil, err
		}
	}
	return s.armarCarrito(ctx, c.ID, clampedID)
}

func (s *carritoService) ActualizarItem(ctx context.Context, webUserID, itemID int, req dto.ActualizarItemRequest) (*dto.CarritoResponse, error) {
	c, err := s.activo(ctx, webUserID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindItemByID(ctx, itemID, c.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d: %w", itemID, ErrNoEncontrado)
		}
		return nil, err
	}

	wv, err := s.stock.FindWebVariante(ctx, item.VariantID)
	if err != nil {
		return nil, err
	}

	cantidad := req.Cantidad
	clampedID := 0
	if cantidad > wv.DisplayedStock {
		cantidad = wv.DisplayedStock
		clampedID = item.VariantID
	}
	if cantidad <= 0 {
		if err := s.repo.RemoveItem(ctx, itemID, c.ID); err != nil {
			return nil, err
		}
		return s.armarCarrito(ctx, c.ID, 0)
	}

	if err := s.repo.UpdateItemCantidad(ctx, itemID, cantidad); err != nil {
		return nil, err
	}
	return s.armarCarrito(ctx, c.ID, clampedID)
}

func (s *carritoService) EliminarItem(ctx context.Context, webUserID, itemID int) (*dto.CarritoResponse, error) {
	c, err := s.activo(ctx, webUserID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindItemByID(ctx, itemID, c.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d: %w", itemID, ErrNoEncontrado)
		}
		return nil, err
	}
	if err := s.repo.RemoveItem(ctx, itemID, c.ID); err != nil {
		return nil, err
	}
	return s.armarCarrito(ctx, c.ID, 0)
}

func (s *carritoService) Vaciar(ctx context.Context, webUserID int) error {
	c, err := s.activo(ctx, webUserID)
	if err != nil {
		return err
	}
	return s.repo.ClearItems(ctx, c.ID)
}

func (s *carritoService) armarCarrito(ctx context.Context, cartID, clampedVariantID int) (*dto.CarritoResponse, error) {
	rows, err := s.repo.ItemsConDetalle(ctx, cartID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CarritoItemResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.CarritoItemResponse{
			ID:        row.ID,
			VariantID: row.VariantID,
			ProductID: row.ProductID,
			NombreWeb: row.NombreWeb,
			Talle:     row.Talle,
			Color:     row.Color,
			Cantidad:  row.Cantidad,
			Clamped:   row.VariantID == clampedVariantID && clampedVariantID != 0,
		})
	}
	return &dto.CarritoResponse{ID: cartID, Items: items}, nil
}
