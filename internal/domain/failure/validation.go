package failure

import "fmt"

// EmailFailure agrupa los fallos de validación de Email.
type EmailFailure interface {
	Failure
	emailFailure()
}

type emailFamily struct{ sealed }

func (emailFamily) emailFailure() {}

type (
	EmailEmpty           struct{ emailFamily }
	EmailMissingAtSymbol struct{ emailFamily }
	EmailInvalidFormat   struct{ emailFamily }
	EmailTooShort        struct {
		emailFamily
		Min int
	}
	EmailTooLong struct {
		emailFamily
		Max int
	}
)

func (EmailEmpty) Message() string           { return "Email cannot be empty" }
func (EmailMissingAtSymbol) Message() string { return "Email must contain an @ symbol" }
func (EmailInvalidFormat) Message() string   { return "Email format is invalid" }
func (f EmailTooShort) Message() string {
	return fmt.Sprintf("Email is too short (minimum length: %d)", f.Min)
}
func (f EmailTooLong) Message() string {
	return fmt.Sprintf("Email is too long (maximum length: %d)", f.Max)
}

func (f EmailEmpty) Error() string           { return f.Message() }
func (f EmailMissingAtSymbol) Error() string { return f.Message() }
func (f EmailInvalidFormat) Error() string   { return f.Message() }
func (f EmailTooShort) Error() string        { return f.Message() }
func (f EmailTooLong) Error() string         { return f.Message() }

func (f EmailEmpty) Accept(v Visitor)           { v.VisitEmailEmpty(f) }
func (f EmailMissingAtSymbol) Accept(v Visitor) { v.VisitEmailMissingAtSymbol(f) }
func (f EmailInvalidFormat) Accept(v Visitor)   { v.VisitEmailInvalidFormat(f) }
func (f EmailTooShort) Accept(v Visitor)        { v.VisitEmailTooShort(f) }
func (f EmailTooLong) Accept(v Visitor)         { v.VisitEmailTooLong(f) }

// NameFailure agrupa los fallos de validación de nombres y apellidos.
type NameFailure interface {
	Failure
	nameFailure()
}

type nameFamily struct{ sealed }

func (nameFamily) nameFailure() {}

type (
	NameEmpty    struct{ nameFamily }
	NameTooShort struct {
		nameFamily
		Min int
	}
	NameTooLong struct {
		nameFamily
		Max int
	}
	NameInvalidFormat struct{ nameFamily }
)

func (NameEmpty) Message() string { return "Name cannot be empty" }
func (f NameTooShort) Message() string {
	return fmt.Sprintf("Name is too short (minimum length: %d)", f.Min)
}
func (f NameTooLong) Message() string {
	return fmt.Sprintf("Name is too long (maximum length: %d)", f.Max)
}
func (NameInvalidFormat) Message() string {
	return "Name can only contain letters, spaces, hyphens and apostrophes"
}

func (f NameEmpty) Error() string         { return f.Message() }
func (f NameTooShort) Error() string      { return f.Message() }
func (f NameTooLong) Error() string       { return f.Message() }
func (f NameInvalidFormat) Error() string { return f.Message() }

func (f NameEmpty) Accept(v Visitor)         { v.VisitNameEmpty(f) }
func (f NameTooShort) Accept(v Visitor)      { v.VisitNameTooShort(f) }
func (f NameTooLong) Accept(v Visitor)       { v.VisitNameTooLong(f) }
func (f NameInvalidFormat) Accept(v Visitor) { v.VisitNameInvalidFormat(f) }

// PasswordFailure agrupa los fallos de las reglas de fortaleza de contraseña.
type PasswordFailure interface {
	Failure
	passwordFailure()
}

type passwordFamily struct{ sealed }

func (passwordFamily) passwordFailure() {}

type (
	PasswordEmpty    struct{ passwordFamily }
	PasswordTooShort struct {
		passwordFamily
		Min int
	}
	PasswordTooLong struct {
		passwordFamily
		Max int
	}
	PasswordMissingUppercase        struct{ passwordFamily }
	PasswordMissingLowercase        struct{ passwordFamily }
	PasswordMissingDigit            struct{ passwordFamily }
	PasswordMissingSpecialCharacter struct{ passwordFamily }
)

func (PasswordEmpty) Message() string { return "Password cannot be empty" }
func (f PasswordTooShort) Message() string {
	return fmt.Sprintf("Password is too short (minimum length: %d)", f.Min)
}
func (f PasswordTooLong) Message() string {
	return fmt.Sprintf("Password is too long (maximum length: %d)", f.Max)
}
func (PasswordMissingUppercase) Message() string {
	return "Password must contain at least one uppercase letter"
}
func (PasswordMissingLowercase) Message() string {
	return "Password must contain at least one lowercase letter"
}
func (PasswordMissingDigit) Message() string { return "Password must contain at least one digit" }
func (PasswordMissingSpecialCharacter) Message() string {
	return "Password must contain at least one special character"
}

func (f PasswordEmpty) Error() string                   { return f.Message() }
func (f PasswordTooShort) Error() string                { return f.Message() }
func (f PasswordTooLong) Error() string                 { return f.Message() }
func (f PasswordMissingUppercase) Error() string        { return f.Message() }
func (f PasswordMissingLowercase) Error() string        { return f.Message() }
func (f PasswordMissingDigit) Error() string            { return f.Message() }
func (f PasswordMissingSpecialCharacter) Error() string { return f.Message() }

func (f PasswordEmpty) Accept(v Visitor)            { v.VisitPasswordEmpty(f) }
func (f PasswordTooShort) Accept(v Visitor)         { v.VisitPasswordTooShort(f) }
func (f PasswordTooLong) Accept(v Visitor)          { v.VisitPasswordTooLong(f) }
func (f PasswordMissingUppercase) Accept(v Visitor) { v.VisitPasswordMissingUppercase(f) }
func (f PasswordMissingLowercase) Accept(v Visitor) { v.VisitPasswordMissingLowercase(f) }
func (f PasswordMissingDigit) Accept(v Visitor)     { v.VisitPasswordMissingDigit(f) }
func (f PasswordMissingSpecialCharacter) Accept(v Visitor) {
	v.VisitPasswordMissingSpecialCharacter(f)
}

// CompanyNameFailure agrupa los fallos de validación del nombre de empresa.
type CompanyNameFailure interface {
	Failure
	companyNameFailure()
}

type companyNameFamily struct{ sealed }

func (companyNameFamily) companyNameFailure() {}

type (
	CompanyNameEmpty    struct{ companyNameFamily }
	CompanyNameTooShort struct {
		companyNameFamily
		Min int
	}
	CompanyNameTooLong struct {
		companyNameFamily
		Max int
	}
	CompanyNameInvalidFormat struct{ companyNameFamily }
)

func (CompanyNameEmpty) Message() string { return "Company name cannot be empty" }
func (f CompanyNameTooShort) Message() string {
	return fmt.Sprintf("Company name is too short (minimum length: %d)", f.Min)
}
func (f CompanyNameTooLong) Message() string {
	return fmt.Sprintf("Company name is too long (maximum length: %d)", f.Max)
}
func (CompanyNameInvalidFormat) Message() string { return "Company name contains invalid characters" }

func (f CompanyNameEmpty) Error() string         { return f.Message() }
func (f CompanyNameTooShort) Error() string      { return f.Message() }
func (f CompanyNameTooLong) Error() string       { return f.Message() }
func (f CompanyNameInvalidFormat) Error() string { return f.Message() }

func (f CompanyNameEmpty) Accept(v Visitor)         { v.VisitCompanyNameEmpty(f) }
func (f CompanyNameTooShort) Accept(v Visitor)      { v.VisitCompanyNameTooShort(f) }
func (f CompanyNameTooLong) Accept(v Visitor)       { v.VisitCompanyNameTooLong(f) }
func (f CompanyNameInvalidFormat) Accept(v Visitor) { v.VisitCompanyNameInvalidFormat(f) }

// RoleNameFailure se produce cuando el nombre de rol no pertenece a la enumeración.
type RoleNameFailure interface {
	Failure
	roleNameFailure()
}

type roleNameFamily struct{ sealed }

func (roleNameFamily) roleNameFailure() {}

type RoleNameUnknown struct{ roleNameFamily }

func (RoleNameUnknown) Message() string {
	return "Role name must be one of ROLE_USER, ROLE_ADMIN, ROLE_SUPER_ADMIN"
}
func (f RoleNameUnknown) Error() string    { return f.Message() }
func (f RoleNameUnknown) Accept(v Visitor) { v.VisitRoleNameUnknown(f) }
