package repository

import (
	"context"

	"mykonos/internal/model"

	"gorm.io/gorm"
)

// GrupoRepository reads the category tree. Tree traversal itself happens in
// the service layer over the full adjacency list so cycles can be guarded.
type GrupoRepository interface {
	ListAll(ctx context.Context) ([]model.Grupo, error)
	ListRoots(ctx context.Context) ([]model.Grupo, error)
	FindByID(ctx context.Context, id int) (*model.Grupo, error)
}

type grupoRepo struct{ db *gorm.DB }

func NewGrupoRepository(db *gorm.DB) GrupoRepository { return &grupoRepo{db: db} }

func (r *grupoRepo) ListAll(ctx context.Context) ([]model.Grupo, error) {
	var grupos []model.Grupo
	err := r.db.WithContext(ctx).Order("group_name ASC").Find(&grupos).Error
	return grupos, err
}

func (r *grupoRepo) ListRoots(ctx context.Context) ([]model.Grupo, error) {
	var grupos []model.Grupo
	err := r.db.WithContext(ctx).
		Where("marked_as_root = TRUE OR parent_group_id IS NULL").
		Order("group_name ASC").
		Find(&grupos).Error
	return grupos, err
}

func (r *grupoRepo) FindByID(ctx context.Context, id int) (*model.Grupo, error) {
	var g model.Grupo
	err := r.db.WithContext(ctx).First(&g, id).Error
	return &g, err
}
