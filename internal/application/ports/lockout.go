package ports

import (
	"context"
	"time"
)

// LoginLockoutStore lleva la cuenta de logins fallidos por email y aplica un enfriamiento.
type LoginLockoutStore interface {
	// IsLocked indica si hay que rechazar el login y por cuánto tiempo más.
	IsLocked(ctx context.Context, key string) (locked bool, retryAfter time.Duration)
	// RecordFailure registra un intento fallido; al llegar al máximo bloquea la clave.
	RecordFailure(ctx context.Context, key string)
	// RecordSuccess limpia el contador de la clave.
	RecordSuccess(ctx context.Context, key string)
}
