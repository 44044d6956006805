package auth

import (
	"context"
	"sync"

	"github.com/samber/oops"

	"github.com/jhoicas/master-auth-service/internal/application/dto"
	"github.com/jhoicas/master-auth-service/internal/application/ports"
	"github.com/jhoicas/master-auth-service/internal/domain/failure"
	"github.com/jhoicas/master-auth-service/internal/domain/repository"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
	"github.com/jhoicas/master-auth-service/internal/metrics"
)

// TokenType esquema con el que el cliente debe presentar el token.
const TokenType = "Bearer"

// dummyPassword se hashea una vez con el codificador configurado; su hash se verifica
// cuando el email no existe para que el tiempo de respuesta no delate la cuenta.
// No es una credencial: ninguna cuenta la usa.
const dummyPassword = "Dummy!Passw0rd"

// AuthService caso de uso de autenticación: verifica credenciales y emite el token.
type AuthService struct {
	users   repository.UserRepository
	encoder ports.PasswordEncoder
	issuer  ports.TokenIssuer
	lockout ports.LoginLockoutStore

	dummyOnce sync.Once
	dummyHash types.PasswordHash
	dummyOK   bool
}

// NewAuthService construye el servicio. lockout puede ser nil para desactivar el
// enfriamiento por intentos fallidos.
func NewAuthService(users repository.UserRepository, encoder ports.PasswordEncoder, issuer ports.TokenIssuer, lockout ports.LoginLockoutStore) *AuthService {
	return &AuthService{users: users, encoder: encoder, issuer: issuer, lockout: lockout}
}

// AuthenticateUser valida las credenciales y devuelve el token firmado.
// Email inexistente y contraseña incorrecta producen el mismo InvalidCredentials para no
// revelar qué cuentas existen. Los flags de cuenta se revisan solo después de verificar la
// contraseña.
func (s *AuthService) AuthenticateUser(ctx context.Context, in dto.ValidatedLogin) (*dto.TokenResponse, error) {
	key := in.Email.String()
	if s.lockout != nil {
		if locked, _ := s.lockout.IsLocked(ctx, key); locked {
			metrics.AuthAttemptsTotal.WithLabelValues(metrics.OutcomeThrottled).Inc()
			return nil, failure.TooManyAttempts{}
		}
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, oops.Code("USER_STORE").With("operation", "find by email").Wrap(err)
	}
	if user == nil {
		s.verifyDummy(in.Password)
		return nil, s.rejectCredentials(ctx, key)
	}
	ok, err := s.encoder.Verify(in.Password, user.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, oops.Code("CREDENTIALS").With("operation", "verify password").With("user_id", user.ID).Wrap(err)
	}
	if !ok {
		return nil, s.rejectCredentials(ctx, key)
	}
	if s.lockout != nil {
		s.lockout.RecordSuccess(ctx, key)
	}

	switch {
	case !user.Enabled:
		metrics.AuthAttemptsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, failure.AccountDisabled{}
	case user.Locked:
		metrics.AuthAttemptsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, failure.AccountLocked{}
	}

	token, err := s.issuer.Issue(ports.TokenSubject{UserID: user.ID, Email: user.Email, Role: user.Role.Name})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, oops.Code("TOKEN").With("user_id", user.ID).Wrap(err)
	}
	metrics.AuthAttemptsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return &dto.TokenResponse{
		Token:     token.Token,
		Type:      TokenType,
		ID:        user.ID,
		Email:     user.Email.String(),
		Role:      user.Role.Name.String(),
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// verifyDummy gasta el mismo trabajo de verificación que un email existente. El resultado
// se descarta.
func (s *AuthService) verifyDummy(password types.Password) {
	s.dummyOnce.Do(func() {
		p, f := types.NewPassword(dummyPassword)
		if f != nil {
			return
		}
		hash, err := s.encoder.Hash(p)
		if err != nil {
			return
		}
		s.dummyHash, s.dummyOK = hash, true
	})
	if s.dummyOK {
		_, _ = s.encoder.Verify(password, s.dummyHash)
	}
}

func (s *AuthService) rejectCredentials(ctx context.Context, key string) error {
	if s.lockout != nil {
		s.lockout.RecordFailure(ctx, key)
	}
	metrics.AuthAttemptsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
	return failure.InvalidCredentials{}
}
