package ports

import (
	"time"

	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

// PasswordEncoder define el puerto del codificador de credenciales de una vía.
// El algoritmo concreto (bcrypt, argon2id) no forma parte del contrato.
type PasswordEncoder interface {
	Hash(password types.Password) (types.PasswordHash, error)
	// Verify devuelve (false, nil) si no coincide y error solo si el hash es ilegible.
	Verify(password types.Password, hash types.PasswordHash) (bool, error)
}

// TokenSubject datos del usuario que se embeben en el token.
type TokenSubject struct {
	UserID int64
	Email  types.Email
	Role   types.RoleName
}

// IssuedToken token firmado y su instante de expiración.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenIssuer define el puerto del emisor de tokens firmados.
type TokenIssuer interface {
	Issue(subject TokenSubject) (IssuedToken, error)
}
