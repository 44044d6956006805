package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/master-auth-service/internal/domain/failure"
)

// Outcome respuesta HTTP que corresponde a un Failure: código de estado y cuerpo en texto plano.
type Outcome struct {
	Status int
	Body   string
}

// ResolveFailure traduce un Failure a su Outcome. Conflicto de email es 409, id o rol
// inexistente es 404 y el resto son errores del cliente (400) con el mensaje de la variante.
func ResolveFailure(f failure.Failure) Outcome {
	r := &failureResolver{}
	f.Accept(r)
	return r.out
}

// failureResolver implementa failure.Visitor: una variante nueva no compila hasta que se
// agregue aquí.
type failureResolver struct {
	out Outcome
}

func (r *failureResolver) set(status int, f failure.Failure) {
	r.out = Outcome{Status: status, Body: f.Message()}
}

func (r *failureResolver) badRequest(f failure.Failure) { r.set(fiber.StatusBadRequest, f) }

func (r *failureResolver) VisitEmailEmpty(f failure.EmailEmpty)                     { r.badRequest(f) }
func (r *failureResolver) VisitEmailMissingAtSymbol(f failure.EmailMissingAtSymbol) { r.badRequest(f) }
func (r *failureResolver) VisitEmailInvalidFormat(f failure.EmailInvalidFormat)     { r.badRequest(f) }
func (r *failureResolver) VisitEmailTooShort(f failure.EmailTooShort)               { r.badRequest(f) }
func (r *failureResolver) VisitEmailTooLong(f failure.EmailTooLong)                 { r.badRequest(f) }

func (r *failureResolver) VisitNameEmpty(f failure.NameEmpty)                 { r.badRequest(f) }
func (r *failureResolver) VisitNameTooShort(f failure.NameTooShort)           { r.badRequest(f) }
func (r *failureResolver) VisitNameTooLong(f failure.NameTooLong)             { r.badRequest(f) }
func (r *failureResolver) VisitNameInvalidFormat(f failure.NameInvalidFormat) { r.badRequest(f) }

func (r *failureResolver) VisitPasswordEmpty(f failure.PasswordEmpty)       { r.badRequest(f) }
func (r *failureResolver) VisitPasswordTooShort(f failure.PasswordTooShort) { r.badRequest(f) }
func (r *failureResolver) VisitPasswordTooLong(f failure.PasswordTooLong)   { r.badRequest(f) }
func (r *failureResolver) VisitPasswordMissingUppercase(f failure.PasswordMissingUppercase) {
	r.badRequest(f)
}
func (r *failureResolver) VisitPasswordMissingLowercase(f failure.PasswordMissingLowercase) {
	r.badRequest(f)
}
func (r *failureResolver) VisitPasswordMissingDigit(f failure.PasswordMissingDigit) { r.badRequest(f) }
func (r *failureResolver) VisitPasswordMissingSpecialCharacter(f failure.PasswordMissingSpecialCharacter) {
	r.badRequest(f)
}

func (r *failureResolver) VisitCompanyNameEmpty(f failure.CompanyNameEmpty)       { r.badRequest(f) }
func (r *failureResolver) VisitCompanyNameTooShort(f failure.CompanyNameTooShort) { r.badRequest(f) }
func (r *failureResolver) VisitCompanyNameTooLong(f failure.CompanyNameTooLong)   { r.badRequest(f) }
func (r *failureResolver) VisitCompanyNameInvalidFormat(f failure.CompanyNameInvalidFormat) {
	r.badRequest(f)
}

func (r *failureResolver) VisitRoleNameUnknown(f failure.RoleNameUnknown) { r.badRequest(f) }

func (r *failureResolver) VisitEmailAlreadyExists(f failure.EmailAlreadyExists) {
	r.set(fiber.StatusConflict, f)
}
func (r *failureResolver) VisitIdNotExists(f failure.IdNotExists)   { r.set(fiber.StatusNotFound, f) }
func (r *failureResolver) VisitRoleNotFound(f failure.RoleNotFound) { r.set(fiber.StatusNotFound, f) }

func (r *failureResolver) VisitInvalidCredentials(f failure.InvalidCredentials) { r.badRequest(f) }
func (r *failureResolver) VisitAccountLocked(f failure.AccountLocked)           { r.badRequest(f) }
func (r *failureResolver) VisitAccountDisabled(f failure.AccountDisabled)       { r.badRequest(f) }
func (r *failureResolver) VisitTooManyAttempts(f failure.TooManyAttempts)       { r.badRequest(f) }
