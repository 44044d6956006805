package types

import "github.com/jhoicas/master-auth-service/internal/domain/failure"

// FieldState estado de un campo opcional de una petición de actualización.
type FieldState int

const (
	// FieldUnset el campo no vino en la petición: no se modifica.
	FieldUnset FieldState = iota
	// FieldInvalid el campo vino con un valor que no pasó la validación.
	FieldInvalid
	// FieldValid el campo vino con un valor válido.
	FieldValid
)

// Field resultado de tres estados de validar un campo opcional.
type Field[T any] struct {
	state FieldState
	value T
	fail  failure.Failure
}

// ParseField valida raw con ctor solo si está presente. nil significa "sin cambio" y no
// invoca al constructor.
func ParseField[T any, F failure.Failure](raw *string, ctor func(string) (T, F)) Field[T] {
	if raw == nil {
		return Field[T]{state: FieldUnset}
	}
	value, f := ctor(*raw)
	if fail := failure.Failure(f); fail != nil {
		return Field[T]{state: FieldInvalid, fail: fail}
	}
	return Field[T]{state: FieldValid, value: value}
}

func (f Field[T]) State() FieldState { return f.state }

// Failure devuelve el fallo del campo; nil salvo en FieldInvalid.
func (f Field[T]) Failure() failure.Failure { return f.fail }

// Resolve colapsa el campo a un Optional, o devuelve el fallo si era inválido.
func (f Field[T]) Resolve() (Optional[T], failure.Failure) {
	switch f.state {
	case FieldInvalid:
		return Optional[T]{}, f.fail
	case FieldValid:
		return Some(f.value), nil
	default:
		return None[T](), nil
	}
}

// Optional valor ya validado que puede estar ausente.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Optional[T] { return Optional[T]{value: v, set: true} }

func None[T any]() Optional[T] { return Optional[T]{} }

// Get devuelve el valor y si estaba presente.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

func (o Optional[T]) IsSet() bool { return o.set }
