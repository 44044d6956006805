package types

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/master-auth-service/internal/domain/failure"
)

// Límites de longitud de nombre y apellido, en runas.
const (
	NameMinLength = 2
	NameMaxLength = 50
)

// Name nombre o apellido de una persona.
type Name struct {
	value string
}

// NewName valida raw en forma NFC: vacío, longitud mínima, longitud máxima y caracteres
// permitidos (letras, espacio, guion y apóstrofo), en ese orden.
func NewName(raw string) (Name, failure.NameFailure) {
	value := norm.NFC.String(raw)
	length := utf8.RuneCountInString(value)
	switch {
	case value == "":
		return Name{}, failure.NameEmpty{}
	case length < NameMinLength:
		return Name{}, failure.NameTooShort{Min: NameMinLength}
	case length > NameMaxLength:
		return Name{}, failure.NameTooLong{Max: NameMaxLength}
	}
	for _, r := range value {
		if !isNameRune(r) {
			return Name{}, failure.NameInvalidFormat{}
		}
	}
	return Name{value: value}, nil
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\''
}

func (n Name) String() string { return n.value }

func (n Name) IsZero() bool { return n.value == "" }
