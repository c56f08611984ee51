package repository

import (
	"context"

	"mykonos/internal/model"

	"gorm.io/gorm"
)

type ImagenRepository interface {
	Create(ctx context.Context, img *model.Imagen) error
	FindByID(ctx context.Context, id int) (*model.Imagen, error)
	Delete(ctx context.Context, id int) error
	FirstByProduct(ctx context.Context, productID int) (*model.Imagen, error)
}

type imagenRepo struct{ db *gorm.DB }

func NewImagenRepository(db *gorm.DB) ImagenRepository { return &imagenRepo{db: db} }

func (r *imagenRepo) Create(ctx context.Context, img *model.Imagen) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *imagenRepo) FindByID(ctx context.Context, id int) (*model.Imagen, error) {
	var img model.Imagen
	err := r.db.WithContext(ctx).First(&img, id).Error
	return &img, err
}

func (r *imagenRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Imagen{}, id).Error
}

func (r *imagenRepo) FirstByProduct(ctx context.Context, productID int) (*model.Imagen, error) {
	var img model.Imagen
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		First(&img).Error
	return &img, err
}
