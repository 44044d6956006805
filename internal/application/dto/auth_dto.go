package dto

import (
	"time"

	"github.com/jhoicas/master-auth-service/internal/domain/failure"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

// LoginRequest entrada cruda para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidatedLogin credenciales validadas.
type ValidatedLogin struct {
	Email    types.Email
	Password types.Password
}

// Validate valida email y luego contraseña.
func (r LoginRequest) Validate() (ValidatedLogin, failure.Failure) {
	var (
		v ValidatedLogin
		f failure.Failure
	)
	if v.Email, f = types.NewEmail(r.Email); f != nil {
		return ValidatedLogin{}, f
	}
	if v.Password, f = types.NewPassword(r.Password); f != nil {
		return ValidatedLogin{}, f
	}
	return v, nil
}

// TokenResponse salida del login con el token firmado.
type TokenResponse struct {
	Token     string    `json:"token"`
	Type      string    `json:"type"`
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}
