package usecase

import "github.com/jhoicas/master-auth-service/internal/domain/types"

// GrantableRole decide qué rol recibe una cuenta nueva según quién la crea.
// SUPER_ADMIN puede otorgar cualquier rol y ADMIN hasta ADMIN. Un registro anónimo o de
// un usuario común siempre queda en ROLE_USER.
func GrantableRole(requested types.RoleName, caller types.Optional[types.RoleName]) types.RoleName {
	role, ok := caller.Get()
	if !ok {
		return types.RoleUser
	}
	switch role {
	case types.RoleSuperAdmin:
		return requested
	case types.RoleAdmin:
		if requested == types.RoleSuperAdmin {
			return types.RoleUser
		}
		return requested
	default:
		return types.RoleUser
	}
}
