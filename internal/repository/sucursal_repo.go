package repository

import (
	"context"

	"mykonos/internal/model"

	"gorm.io/gorm"
)

type SucursalRepository interface {
	ListAll(ctx context.Context) ([]model.Sucursal, error)
	FindByID(ctx context.Context, id int) (*model.Sucursal, error)
}

type sucursalRepo struct{ db *gorm.DB }

func NewSucursalRepository(db *gorm.DB) SucursalRepository { return &sucursalRepo{db: db} }

func (r *sucursalRepo) ListAll(ctx context.Context) ([]model.Sucursal, error) {
	var sucursales []model.Sucursal
	err := r.db.WithContext(ctx).Order("id ASC").Find(&sucursales).Error
	return sucursales, err
}

func (r *sucursalRepo) FindByID(ctx context.Context, id int) (*model.Sucursal, error) {
	var s model.Sucursal
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}
