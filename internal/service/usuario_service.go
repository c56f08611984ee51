package service

import (
	"context"
	"errors"
	"fmt"

	"mykonos/internal/dto"
	"mykonos/internal/model"
	"mykonos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrCredenciales keeps login failures indistinguishable: unknown user and
// wrong password produce the same message.
var ErrCredenciales = errors.New("credenciales invalidas")

// UsuarioService manages storefront accounts: registration with email
// verification, opaque-token sessions, profile updates and password changes.
type UsuarioService interface {
	Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, token string) error
	Perfil(ctx context.Context, userID int) (*dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, userID int, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	CambiarPassword(ctx context.Context, userID int, req dto.CambiarPasswordRequest) error
	VerificarEmail(ctx context.Context, req dto.VerificarEmailRequest) error
	ReenviarVerificacion(ctx context.Context, req dto.ReenviarVerificacionRequest) (string, error)
}

type usuarioService struct {
	repo repository.WebUserRepository
}

func NewUsuarioService(repo repository.WebUserRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func (s *usuarioService) Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username %q ya registrado: %w", req.Username, ErrValidacion)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if enUso, err := s.repo.EmailEnUso(ctx, req.Email, 0); err != nil {
		return nil, err
	} else if enUso {
		return nil, fmt.Errorf("email %q ya registrado: %w", req.Email, ErrValidacion)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	verificacion := uuid.NewString()
	u := model.WebUser{
		Username:          req.Username,
		Email:             req.Email,
		Password:          string(hash),
		Fullname:          req.Fullname,
		Phone:             req.Phone,
		Domicilio:         req.Domicilio,
		Cuit:              req.Cuit,
		Role:              "cliente",
		Status:            "active",
		VerificationToken: &verificacion,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return nil, err
	}

	// Email delivery is out of scope here; the token lands in the log so an
	// operator can hand it over during development.
	log.Info().Int("web_user_id", u.ID).Str("verification_token", verificacion).
		Msg("usuario registrado, verificacion pendiente")

	resp := toUsuarioResponse(u)
	return &resp, nil
}

func (s *usuarioService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciales
		}
		return nil, err
	}
	if u.Status != "active" {
		return nil, ErrCredenciales
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return nil, ErrCredenciales
	}

	// Rotating the token invalidates any previous session for this user.
	token := uuid.NewString()
	if err := s.repo.SetSessionToken(ctx, u.ID, &token); err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, Usuario: toUsuarioResponse(*u)}, nil
}

func (s *usuarioService) Logout(ctx context.Context, token string) error {
	affected, err := s.repo.ClearSessionByToken(ctx, token)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("sesion: %w", ErrNoEncontrado)
	}
	return nil
}

func (s *usuarioService) Perfil(ctx context.Context, userID int) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("usuario %d: %w", userID, ErrNoEncontrado)
		}
		return nil, err
	}
	resp := toUsuarioResponse(*u)
	return &resp, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, userID int, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	campos := make(map[string]interface{})
	if req.Fullname != nil {
		campos["fullname"] = *req.Fullname
	}
	if req.Email != nil {
		enUso, err := s.repo.EmailEnUso(ctx, *req.Email, userID)
		if err != nil {
			return nil, err
		}
		if enUso {
			return nil, fmt.Errorf("email %q ya registrado: %w", *req.Email, ErrValidacion)
		}
		// A new address starts unverified again.
		campos["email"] = *req.Email
		campos["email_verified"] = false
	}
	if req.Phone != nil {
		campos["phone"] = *req.Phone
	}
	if req.Domicilio != nil {
		campos["domicilio"] = *req.Domicilio
	}
	if req.Cuit != nil {
		campos["cuit"] = *req.Cuit
	}
	if req.ProfileImageURL != nil {
		campos["profile_image_url"] = *req.ProfileImageURL
	}
	if len(campos) == 0 {
		return nil, ErrSinCampos
	}

	if err := s.repo.UpdateCampos(ctx, userID, campos); err != nil {
		return nil, err
	}
	return s.Perfil(ctx, userID)
}

func (s *usuarioService) CambiarPassword(ctx context.Context, userID int, req dto.CambiarPasswordRequest) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("usuario %d: %w", userID, ErrNoEncontrado)
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.PasswordActual)) != nil {
		return fmt.Errorf("password actual incorrecta: %w", ErrValidacion)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PasswordNueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdateCampos(ctx, userID, map[string]interface{}{
		"password":      string(hash),
		"session_token": nil, // force re-login after a password change
	})
}

func (s *usuarioService) VerificarEmail(ctx context.Context, req dto.VerificarEmailRequest) error {
	u, err := s.repo.FindByVerificationToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("token de verificacion: %w", ErrNoEncontrado)
		}
		return err
	}
	return s.repo.UpdateCampos(ctx, u.ID, map[string]interface{}{
		"email_verified":     true,
		"verification_token": nil,
	})
}

// ReenviarVerificacion issues a fresh token for an unverified address and
// returns it to the caller for delivery.
func (s *usuarioService) ReenviarVerificacion(ctx context.Context, req dto.ReenviarVerificacionRequest) (string, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("email %q: %w", req.Email, ErrNoEncontrado)
		}
		return "", err
	}
	if u.EmailVerified {
		return "", fmt.Errorf("email ya verificado: %w", ErrValidacion)
	}

	token := uuid.NewString()
	if err := s.repo.UpdateCampos(ctx, u.ID, map[string]interface{}{
		"verification_token": token,
	}); err != nil {
		return "", err
	}
	return token, nil
}

func toUsuarioResponse(u model.WebUser) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:              u.ID,
		Username:        u.Username,
		Fullname:        u.Fullname,
		Email:           u.Email,
		Phone:           u.Phone,
		Domicilio:       u.Domicilio,
		Cuit:            u.Cuit,
		Role:            u.Role,
		Status:          u.Status,
		ProfileImageURL: u.ProfileImageURL,
		EmailVerified:   u.EmailVerified,
		CreatedAt:       u.CreatedAt,
	}
}
