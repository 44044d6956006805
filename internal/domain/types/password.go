package types

import (
	"unicode"

	"github.com/jhoicas/master-auth-service/internal/domain/failure"
)

// Límites de longitud de la contraseña en bytes. 72 es el máximo que procesa bcrypt.
const (
	PasswordMinLength = 8
	PasswordMaxLength = 72
)

// Password contraseña en claro que cumple las reglas de fortaleza.
// Solo vive durante la petición; lo que se persiste es un PasswordHash.
type Password struct {
	value string
}

// NewPassword aplica las reglas en orden: vacía, longitud, mayúscula, minúscula, dígito
// y carácter especial.
func NewPassword(raw string) (Password, failure.PasswordFailure) {
	switch {
	case raw == "":
		return Password{}, failure.PasswordEmpty{}
	case len(raw) < PasswordMinLength:
		return Password{}, failure.PasswordTooShort{Min: PasswordMinLength}
	case len(raw) > PasswordMaxLength:
		return Password{}, failure.PasswordTooLong{Max: PasswordMaxLength}
	}

	var upper, lower, digit, special bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	switch {
	case !upper:
		return Password{}, failure.PasswordMissingUppercase{}
	case !lower:
		return Password{}, failure.PasswordMissingLowercase{}
	case !digit:
		return Password{}, failure.PasswordMissingDigit{}
	case !special:
		return Password{}, failure.PasswordMissingSpecialCharacter{}
	}
	return Password{value: raw}, nil
}

// Plaintext devuelve la contraseña en claro; solo la usa el codificador de credenciales.
func (p Password) Plaintext() string { return p.value }

// String nunca expone el valor, para que no termine en logs.
func (p Password) String() string { return "********" }

// PasswordHash forma codificada y opaca de una contraseña. No se valida ni se serializa.
type PasswordHash struct {
	encoded string
}

// NewPasswordHash envuelve el valor producido por el codificador o leído del almacén.
func NewPasswordHash(encoded string) PasswordHash {
	return PasswordHash{encoded: encoded}
}

// Encoded devuelve la representación que se persiste.
func (h PasswordHash) Encoded() string { return h.encoded }

func (h PasswordHash) String() string { return "[hash]" }
