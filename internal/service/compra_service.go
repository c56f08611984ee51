package service

import (
	"context"
	"errors"
	"fmt"

	"mykonos/internal/dto"
	"mykonos/internal/model"
	"mykonos/internal/repository"

	"gorm.io/gorm"
)

// CompraService reads a web user's purchase history. Sale lines are snapshots;
// the only live lookup is the product's first image for rendering.
type CompraService interface {
	MisCompras(ctx context.Context, webUserID int) ([]dto.CompraResponse, error)
	DetalleCompra(ctx context.Context, webUserID, saleID int) (*dto.CompraResponse, error)
}

type compraService struct {
	ventas   repository.VentaRepository
	imagenes repository.ImagenRepository
}

func NewCompraService(ventas repository.VentaRepository, imagenes repository.ImagenRepository) CompraService {
	return &compraService{ventas: ventas, imagenes: imagenes}
}

func (s *compraService) MisCompras(ctx context.Context, webUserID int) ([]dto.CompraResponse, error) {
	ventas, err := s.ventas.ListByWebUser(ctx, webUserID)
	if err != nil {
		return nil, err
	}

	compras := make([]dto.CompraResponse, 0, len(ventas))
	for _, v := range ventas {
		compra, err := s.armarCompra(ctx, v)
		if err != nil {
			return nil, err
		}
		compras = append(compras, *compra)
	}
	return compras, nil
}

func (s *compraService) DetalleCompra(ctx context.Context, webUserID, saleID int) (*dto.CompraResponse, error) {
	v, err := s.ventas.FindByIDAndUser(ctx, saleID, webUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("compra %d: %w", saleID, ErrNoEncontrado)
		}
		return nil, err
	}
	return s.armarCompra(ctx, *v)
}

func (s *compraService) armarCompra(ctx context.Context, v model.Venta) (*dto.CompraResponse, error) {
	detalles, err := s.ventas.DetailsBySale(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CompraItemResponse, 0, len(detalles))
	for _, d := range detalles {
		item := dto.CompraItemResponse{
			ID:                 d.ID,
			ProductID:          d.ProductID,
			ProductName:        d.ProductName,
			ProductCode:        d.ProductCode,
			SizeName:           d.SizeName,
			ColorName:          d.ColorName,
			SalePrice:          d.SalePrice,
			Quantity:           d.Quantity,
			DiscountPercentage: d.DiscountPercentage,
			DiscountAmount:     d.DiscountAmount,
			Subtotal:           d.Subtotal,
			Total:              d.Total,
		}
		if d.ProductID != nil {
			// Deleted products simply render without an image.
			if img, err := s.imagenes.FirstByProduct(ctx, *d.ProductID); err == nil {
				item.ImageURL = &img.ImageURL
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		items = append(items, item)
	}

	return &dto.CompraResponse{
		ID:               v.ID,
		SaleDate:         v.SaleDate,
		Subtotal:         v.Subtotal,
		TaxAmount:        v.TaxAmount,
		Discount:         v.Discount,
		Total:            v.Total,
		Status:           v.Status,
		ShippingAddress:  v.ShippingAddress,
		ShippingStatus:   v.ShippingStatus,
		ShippingCost:     v.ShippingCost,
		PaymentReference: v.PaymentReference,
		InvoiceNumber:    v.InvoiceNumber,
		Notes:            v.Notes,
		Origin:           v.Origin,
		Items:            items,
	}, nil
}
