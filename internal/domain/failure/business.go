package failure

// UserFailure agrupa los fallos de unicidad y búsqueda de usuarios.
type UserFailure interface {
	Failure
	userFailure()
}

type userFamily struct{ sealed }

func (userFamily) userFailure() {}

type (
	EmailAlreadyExists struct{ userFamily }
	IdNotExists        struct{ userFamily }
)

func (EmailAlreadyExists) Message() string { return "User with this email already exists." }
func (IdNotExists) Message() string        { return "User with this id does not exist." }

func (f EmailAlreadyExists) Error() string { return f.Message() }
func (f IdNotExists) Error() string        { return f.Message() }

func (f EmailAlreadyExists) Accept(v Visitor) { v.VisitEmailAlreadyExists(f) }
func (f IdNotExists) Accept(v Visitor)        { v.VisitIdNotExists(f) }

// RoleFailure se produce cuando un rol de la enumeración no está sembrado en el almacén.
type RoleFailure interface {
	Failure
	roleFailure()
}

type roleFamily struct{ sealed }

func (roleFamily) roleFailure() {}

type RoleNotFound struct{ roleFamily }

func (RoleNotFound) Message() string    { return "Role not found" }
func (f RoleNotFound) Error() string    { return f.Message() }
func (f RoleNotFound) Accept(v Visitor) { v.VisitRoleNotFound(f) }

// AuthenticationFailure agrupa los fallos del login.
// InvalidCredentials cubre tanto "usuario inexistente" como "contraseña incorrecta".
type AuthenticationFailure interface {
	Failure
	authenticationFailure()
}

type authenticationFamily struct{ sealed }

func (authenticationFamily) authenticationFailure() {}

type (
	InvalidCredentials struct{ authenticationFamily }
	AccountLocked      struct{ authenticationFamily }
	AccountDisabled    struct{ authenticationFamily }
	TooManyAttempts    struct{ authenticationFamily }
)

func (InvalidCredentials) Message() string { return "Invalid email or password" }
func (AccountLocked) Message() string      { return "User account is locked" }
func (AccountDisabled) Message() string    { return "User account is disabled" }
func (TooManyAttempts) Message() string {
	return "Too many failed login attempts, try again later"
}

func (f InvalidCredentials) Error() string { return f.Message() }
func (f AccountLocked) Error() string      { return f.Message() }
func (f AccountDisabled) Error() string    { return f.Message() }
func (f TooManyAttempts) Error() string    { return f.Message() }

func (f InvalidCredentials) Accept(v Visitor) { v.VisitInvalidCredentials(f) }
func (f AccountLocked) Accept(v Visitor)      { v.VisitAccountLocked(f) }
func (f AccountDisabled) Accept(v Visitor)    { v.VisitAccountDisabled(f) }
func (f TooManyAttempts) Accept(v Visitor)    { v.VisitTooManyAttempts(f) }
