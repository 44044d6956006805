package types

import "github.com/jhoicas/master-auth-service/internal/domain/failure"

// RoleName nombre de rol de la enumeración cerrada {USER, ADMIN, SUPER_ADMIN}.
type RoleName struct {
	name string
}

var (
	RoleUser       = RoleName{name: "ROLE_USER"}
	RoleAdmin      = RoleName{name: "ROLE_ADMIN"}
	RoleSuperAdmin = RoleName{name: "ROLE_SUPER_ADMIN"}
)

// RoleNames devuelve todos los roles en orden de privilegio creciente.
func RoleNames() []RoleName {
	return []RoleName{RoleUser, RoleAdmin, RoleSuperAdmin}
}

// ParseRoleName convierte raw en un RoleName de la enumeración. La comparación es exacta.
func ParseRoleName(raw string) (RoleName, failure.RoleNameFailure) {
	for _, r := range RoleNames() {
		if r.name == raw {
			return r, nil
		}
	}
	return RoleName{}, failure.RoleNameUnknown{}
}

func (r RoleName) String() string { return r.name }

func (r RoleName) IsZero() bool { return r.name == "" }

// IsAdministrative indica si el rol tiene privilegios de administración.
func (r RoleName) IsAdministrative() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
