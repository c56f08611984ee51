package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared across services. Handlers translate these into the
// apierror envelope; anything else is treated as an internal error and never
// leaked to clients.
var (
	ErrNoEncontrado = errors.New("recurso no encontrado")
	ErrValidacion   = errors.New("error de validacion")
	// ErrSinCampos rejects update payloads that touch zero columns. The policy
	// is reject-consistently, never silently no-op.
	ErrSinCampos = errors.New("no se proporcionaron campos para actualizar")
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
