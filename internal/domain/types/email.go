// Package types contiene los Value Types del dominio: valores que solo pueden construirse
// a través de su constructor validador y que, una vez creados, son válidos durante toda su vida.
package types

import (
	"regexp"
	"strings"

	"github.com/jhoicas/master-auth-service/internal/domain/failure"
)

// Límites de longitud del email (en bytes; el formato solo admite ASCII).
const (
	EmailMinLength = 8
	EmailMaxLength = 254
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

// Email dirección de correo normalizada (sin espacios laterales, minúsculas).
type Email struct {
	value string
}

// NewEmail valida y normaliza raw. El orden de las reglas es parte del contrato:
// vacío, arroba, formato, longitud mínima, longitud máxima. Gana la primera que falle.
func NewEmail(raw string) (Email, failure.EmailFailure) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return Email{}, failure.EmailEmpty{}
	case !strings.Contains(value, "@"):
		return Email{}, failure.EmailMissingAtSymbol{}
	case !emailPattern.MatchString(value):
		return Email{}, failure.EmailInvalidFormat{}
	case len(value) < EmailMinLength:
		return Email{}, failure.EmailTooShort{Min: EmailMinLength}
	case len(value) > EmailMaxLength:
		return Email{}, failure.EmailTooLong{Max: EmailMaxLength}
	}
	return Email{value: value}, nil
}

func (e Email) String() string { return e.value }

// IsZero indica si es el valor cero (nunca producido por NewEmail).
func (e Email) IsZero() bool { return e.value == "" }
