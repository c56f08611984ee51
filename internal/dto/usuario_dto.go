package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistroRequest struct {
	Username  string  `json:"username"  validate:"required,min=3,max=50"`
	Email     string  `json:"email"     validate:"required,email"`
	Password  string  `json:"password"  validate:"required,min=6"`
	Fullname  *string `json:"fullname"`
	Phone     *string `json:"phone"`
	Domicilio *string `json:"domicilio"`
	Cuit      *string `json:"cuit"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ActualizarUsuarioRequest struct {
	Fullname        *string `json:"fullname"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`
	Domicilio       *string `json:"domicilio"`
	Cuit            *string `json:"cuit"`
	ProfileImageURL *string `json:"profile_image_url"`
}

type CambiarPasswordRequest struct {
	PasswordActual string `json:"password_actual" validate:"required"`
	PasswordNueva  string `json:"password_nueva"  validate:"required,min=6"`
}

type VerificarEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type ReenviarVerificacionRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID              int       `json:"id"`
	Username        string    `json:"username"`
	Fullname        *string   `json:"fullname"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Domicilio       *string   `json:"domicilio"`
	Cuit            *string   `json:"cuit"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	ProfileImageURL *string   `json:"profile_image_url"`
	EmailVerified   bool      `json:"email_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

type TokenResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
