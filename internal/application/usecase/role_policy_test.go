package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/master-auth-service/internal/application/usecase"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

func TestGrantableRole(t *testing.T) {
	tests := []struct {
		name      string
		requested types.RoleName
		caller    types.Optional[types.RoleName]
		want      types.RoleName
	}{
		{"anónimo pide admin", types.RoleAdmin, types.None[types.RoleName](), types.RoleUser},
		{"anónimo pide user", types.RoleUser, types.None[types.RoleName](), types.RoleUser},
		{"user pide admin", types.RoleAdmin, types.Some(types.RoleUser), types.RoleUser},
		{"admin otorga admin", types.RoleAdmin, types.Some(types.RoleAdmin), types.RoleAdmin},
		{"admin no otorga super admin", types.RoleSuperAdmin, types.Some(types.RoleAdmin), types.RoleUser},
		{"super admin otorga super admin", types.RoleSuperAdmin, types.Some(types.RoleSuperAdmin), types.RoleSuperAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.GrantableRole(tt.requested, tt.caller))
		})
	}
}
