package service

import (
	"context"
	"errors"
	"fmt"

	"mykonos/internal/dto"
	"mykonos/internal/repository"

	"gorm.io/gorm"
)

type SucursalService interface {
	Listar(ctx context.Context) ([]dto.SucursalResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.SucursalResponse, error)
}

type sucursalService struct {
	repo repository.SucursalRepository
}

func NewSucursalService(repo repository.SucursalRepository) SucursalService {
	return &sucursalService{repo: repo}
}

func (s *sucursalService) Listar(ctx context.Context) ([]dto.SucursalResponse, error) {
	sucursales, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SucursalResponse, 0, len(sucursales))
	for _, suc := range sucursales {
		out = append(out, dto.SucursalResponse{
			ID:      suc.ID,
			Name:    suc.Name,
			Address: suc.Address,
			Phone:   suc.Phone,
			Status:  suc.Status,
		})
	}
	return out, nil
}

func (s *sucursalService) ObtenerPorID(ctx context.Context, id int) (*dto.SucursalResponse, error) {
	suc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sucursal %d: %w", id, ErrNoEncontrado)
		}
		return nil, err
	}
	return &dto.SucursalResponse{
		ID:      suc.ID,
		Name:    suc.Name,
		Address: suc.Address,
		Phone:   suc.Phone,
		Status:  suc.Status,
	}, nil
}
