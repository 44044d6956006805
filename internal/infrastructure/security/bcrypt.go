// Package security contiene los adaptadores de credenciales: codificadores de contraseña
// y el emisor de tokens.
package security

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/master-auth-service/internal/application/ports"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

// Algoritmos soportados por NewPasswordEncoder.
const (
	HasherBcrypt   = "bcrypt"
	HasherArgon2id = "argon2id"
)

var _ ports.PasswordEncoder = (*BcryptEncoder)(nil)

// BcryptEncoder codificador bcrypt.
type BcryptEncoder struct {
	cost int
}

// NewBcryptEncoder usa bcrypt.DefaultCost si cost queda fuera de rango.
func NewBcryptEncoder(cost int) *BcryptEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptEncoder{cost: cost}
}

func (e *BcryptEncoder) Hash(password types.Password) (types.PasswordHash, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password.Plaintext()), e.cost)
	if err != nil {
		return types.PasswordHash{}, fmt.Errorf("bcrypt: %w", err)
	}
	return types.NewPasswordHash(string(hash)), nil
}

func (e *BcryptEncoder) Verify(password types.Password, hash types.PasswordHash) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash.Encoded()), []byte(password.Plaintext()))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("bcrypt: %w", err)
	}
}

// NewPasswordEncoder construye el codificador del algoritmo pedido. El resultado verifica
// también hashes del otro algoritmo, de modo que cambiar PASSWORD_HASHER no invalida
// las cuentas existentes.
func NewPasswordEncoder(kind string, bcryptCost int) (ports.PasswordEncoder, error) {
	bc := NewBcryptEncoder(bcryptCost)
	ar := NewArgon2idEncoder()
	switch kind {
	case HasherBcrypt, "":
		return &fallbackEncoder{primary: bc, secondary: ar, isSecondary: isArgon2idHash}, nil
	case HasherArgon2id:
		return &fallbackEncoder{primary: ar, secondary: bc, isSecondary: isBcryptHash}, nil
	default:
		return nil, fmt.Errorf("algoritmo de contraseña desconocido: %q", kind)
	}
}

type fallbackEncoder struct {
	primary     ports.PasswordEncoder
	secondary   ports.PasswordEncoder
	isSecondary func(encoded string) bool
}

func (e *fallbackEncoder) Hash(password types.Password) (types.PasswordHash, error) {
	return e.primary.Hash(password)
}

func (e *fallbackEncoder) Verify(password types.Password, hash types.PasswordHash) (bool, error) {
	if e.isSecondary(hash.Encoded()) {
		return e.secondary.Verify(password, hash)
	}
	return e.primary.Verify(password, hash)
}

func isBcryptHash(encoded string) bool {
	return strings.HasPrefix(encoded, "$2a$") || strings.HasPrefix(encoded, "$2b$") || strings.HasPrefix(encoded, "$2y$")
}
