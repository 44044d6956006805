// Package failure define la taxonomía cerrada de fallos de dominio.
//
// Cada variante es un tipo propio que implementa Failure. El conjunto es cerrado: el método
// sellado impide implementaciones fuera del paquete y Visitor declara un método por variante,
// de modo que agregar una variante obliga a actualizar todos los visitantes (el resolver HTTP)
// para que el módulo compile.
package failure

// Failure describe por qué una operación no pudo completarse. Implementa error para viajar por
// los retornos normales de Go, pero nunca representa una falla de infraestructura.
type Failure interface {
	error
	// Message devuelve el texto estable que forma parte del contrato externo.
	Message() string
	// Accept despacha la variante concreta al visitante.
	Accept(v Visitor)
	failure()
}

// Visitor recorre las variantes de Failure. Un método por variante.
type Visitor interface {
	VisitEmailEmpty(EmailEmpty)
	VisitEmailMissingAtSymbol(EmailMissingAtSymbol)
	VisitEmailInvalidFormat(EmailInvalidFormat)
	VisitEmailTooShort(EmailTooShort)
	VisitEmailTooLong(EmailTooLong)

	VisitNameEmpty(NameEmpty)
	VisitNameTooShort(NameTooShort)
	VisitNameTooLong(NameTooLong)
	VisitNameInvalidFormat(NameInvalidFormat)

	VisitPasswordEmpty(PasswordEmpty)
	VisitPasswordTooShort(PasswordTooShort)
	VisitPasswordTooLong(PasswordTooLong)
	VisitPasswordMissingUppercase(PasswordMissingUppercase)
	VisitPasswordMissingLowercase(PasswordMissingLowercase)
	VisitPasswordMissingDigit(PasswordMissingDigit)
	VisitPasswordMissingSpecialCharacter(PasswordMissingSpecialCharacter)

	VisitCompanyNameEmpty(CompanyNameEmpty)
	VisitCompanyNameTooShort(CompanyNameTooShort)
	VisitCompanyNameTooLong(CompanyNameTooLong)
	VisitCompanyNameInvalidFormat(CompanyNameInvalidFormat)

	VisitRoleNameUnknown(RoleNameUnknown)

	VisitEmailAlreadyExists(EmailAlreadyExists)
	VisitIdNotExists(IdNotExists)

	VisitRoleNotFound(RoleNotFound)

	VisitInvalidCredentials(InvalidCredentials)
	VisitAccountLocked(AccountLocked)
	VisitAccountDisabled(AccountDisabled)
	VisitTooManyAttempts(TooManyAttempts)
}

type sealed struct{}

func (sealed) failure() {}
