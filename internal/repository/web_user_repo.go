package repository

import (
	"context"

	"mykonos/internal/model"

	"gorm.io/gorm"
)

// WebUserRepository manages storefront accounts and their opaque session
// tokens. Only active accounts resolve through session lookups.
type WebUserRepository interface {
	Create(ctx context.Context, u *model.WebUser) error
	FindByID(ctx context.Context, id int) (*model.WebUser, error)
	FindByUsername(ctx context.Context, username string) (*model.WebUser, error)
	FindByEmail(ctx context.Context, email string) (*model.WebUser, error)
	FindBySessionToken(ctx context.Context, token string) (*model.WebUser, error)
	FindByVerificationToken(ctx context.Context, token string) (*model.WebUser, error)
	EmailEnUso(ctx context.Context, email string, excludeID int) (bool, error)
	UpdateCampos(ctx context.Context, id int, campos map[string]interface{}) error
	SetSessionToken(ctx context.Context, id int, token *string) error
	ClearSessionByToken(ctx context.Context, token string) (int64, error)
}

type webUserRepo struct{ db *gorm.DB }

func NewWebUserRepository(db *gorm.DB) WebUserRepository { return &webUserRepo{db: db} }

func (r *webUserRepo) Create(ctx context.Context, u *model.WebUser) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *webUserRepo) FindByID(ctx context.Context, id int) (*model.WebUser, error) {
	var u model.WebUser
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *webUserRepo) FindByUsername(ctx context.Context, username string) (*model.WebUser, error) {
	var u model.WebUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	return &u, err
}

func (r *webUserRepo) FindByEmail(ctx context.Context, email string) (*model.WebUser, error) {
	var u model.WebUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *webUserRepo) FindBySessionToken(ctx context.Context, token string) (*model.WebUser, error) {
	var u model.WebUser
	err := r.db.WithContext(ctx).
		Where("session_token = ? AND status = 'active'", token).
		First(&u).Error
	return &u, err
}

func (r *webUserRepo) FindByVerificationToken(ctx context.Context, token string) (*model.WebUser, error) {
	var u model.WebUser
	err := r.db.WithContext(ctx).Where("verification_token = ?", token).First(&u).Error
	return &u, err
}

func (r *webUserRepo) EmailEnUso(ctx context.Context, email string, excludeID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.WebUser{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *webUserRepo) UpdateCampos(ctx context.Context, id int, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.WebUser{}).Where("id = ?", id).Updates(campos).Error
}

func (r *webUserRepo) SetSessionToken(ctx context.Context, id int, token *string) error {
	return r.db.WithContext(ctx).Model(&model.WebUser{}).
		Where("id = ?", id).
		Update("session_token", token).Error
}

// ClearSessionByToken NULLs the matching session and reports how many rows
// changed so callers can distinguish an already-dead token.
func (r *webUserRepo) ClearSessionByToken(ctx context.Context, token string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.WebUser{}).
		Where("session_token = ?", token).
		Update("session_token", nil)
	return res.RowsAffected, res.Error
}
