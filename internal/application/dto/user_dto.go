package dto

import (
	"github.com/jhoicas/master-auth-service/internal/domain/failure"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

// RegistrationRequest entrada cruda (no confiable) para registrar un usuario.
type RegistrationRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	CompanyName *string `json:"companyName"`
	Role        *string `json:"role"`
}

// ValidatedRegistration registro validado: solo contiene Value Types.
type ValidatedRegistration struct {
	FirstName   types.Name
	LastName    types.Name
	Email       types.Email
	Password    types.Password
	CompanyName types.Optional[types.CompanyName]
	Role        types.RoleName
}

// Validate valida campo por campo en orden y se detiene en el primer fallo.
// Sin rol explícito se usa ROLE_USER.
func (r RegistrationRequest) Validate() (ValidatedRegistration, failure.Failure) {
	var (
		v ValidatedRegistration
		f failure.Failure
	)
	if v.FirstName, f = types.NewName(r.FirstName); f != nil {
		return ValidatedRegistration{}, f
	}
	if v.LastName, f = types.NewName(r.LastName); f != nil {
		return ValidatedRegistration{}, f
	}
	if v.Email, f = types.NewEmail(r.Email); f != nil {
		return ValidatedRegistration{}, f
	}
	if v.Password, f = types.NewPassword(r.Password); f != nil {
		return ValidatedRegistration{}, f
	}
	if v.CompanyName, f = types.ParseField(r.CompanyName, types.NewCompanyName).Resolve(); f != nil {
		return ValidatedRegistration{}, f
	}
	role, f := types.ParseField(r.Role, types.ParseRoleName).Resolve()
	if f != nil {
		return ValidatedRegistration{}, f
	}
	v.Role = types.RoleUser
	if name, ok := role.Get(); ok {
		v.Role = name
	}
	return v, nil
}

// UserUpdateRequest actualización parcial: nil significa "sin cambio".
type UserUpdateRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	CompanyName *string `json:"companyName"`
	Role        *string `json:"role"`
}

// ValidatedUserUpdate actualización validada; los campos ausentes quedan sin asignar.
type ValidatedUserUpdate struct {
	FirstName   types.Optional[types.Name]
	LastName    types.Optional[types.Name]
	CompanyName types.Optional[types.CompanyName]
	Role        types.Optional[types.RoleName]
}

// Validate valida solo los campos presentes, en orden, y se detiene en el primer fallo.
func (r UserUpdateRequest) Validate() (ValidatedUserUpdate, failure.Failure) {
	var (
		v ValidatedUserUpdate
		f failure.Failure
	)
	if v.FirstName, f = types.ParseField(r.FirstName, types.NewName).Resolve(); f != nil {
		return ValidatedUserUpdate{}, f
	}
	if v.LastName, f = types.ParseField(r.LastName, types.NewName).Resolve(); f != nil {
		return ValidatedUserUpdate{}, f
	}
	if v.CompanyName, f = types.ParseField(r.CompanyName, types.NewCompanyName).Resolve(); f != nil {
		return ValidatedUserUpdate{}, f
	}
	if v.Role, f = types.ParseField(r.Role, types.ParseRoleName).Resolve(); f != nil {
		return ValidatedUserUpdate{}, f
	}
	return v, nil
}

// ChangePasswordRequest entrada para cambiar la contraseña.
type ChangePasswordRequest struct {
	Password string `json:"password"`
}

// ValidatedChangePassword nueva contraseña validada.
type ValidatedChangePassword struct {
	Password types.Password
}

// Validate aplica las reglas de fortaleza a la nueva contraseña.
func (r ChangePasswordRequest) Validate() (ValidatedChangePassword, failure.Failure) {
	password, f := types.NewPassword(r.Password)
	if f != nil {
		return ValidatedChangePassword{}, f
	}
	return ValidatedChangePassword{Password: password}, nil
}

// UserResponse proyección pública de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	CompanyName *string `json:"companyName"`
	Role        string  `json:"role"`
}
