package types

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/master-auth-service/internal/domain/failure"
)

const (
	CompanyNameMinLength = 2
	CompanyNameMaxLength = 100
)

// CompanyName nombre de la empresa del usuario. Es opcional a nivel de entidad.
type CompanyName struct {
	value string
}

// NewCompanyName valida raw sin espacios laterales: vacío, longitud mínima, longitud máxima
// y caracteres (letras, dígitos, espacio y - ' & . ,).
func NewCompanyName(raw string) (CompanyName, failure.CompanyNameFailure) {
	value := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(value)
	switch {
	case value == "":
		return CompanyName{}, failure.CompanyNameEmpty{}
	case length < CompanyNameMinLength:
		return CompanyName{}, failure.CompanyNameTooShort{Min: CompanyNameMinLength}
	case length > CompanyNameMaxLength:
		return CompanyName{}, failure.CompanyNameTooLong{Max: CompanyNameMaxLength}
	}
	for _, r := range value {
		if !isCompanyRune(r) {
			return CompanyName{}, failure.CompanyNameInvalidFormat{}
		}
	}
	return CompanyName{value: value}, nil
}

func isCompanyRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return strings.ContainsRune(" -'&.,", r)
}

func (c CompanyName) String() string { return c.value }
