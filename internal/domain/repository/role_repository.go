package repository

import (
	"context"

	"github.com/jhoicas/master-auth-service/internal/domain/entity"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	FindByName(ctx context.Context, name types.RoleName) (*entity.Role, error)
	// Seed inserta los roles que falten; es idempotente.
	Seed(ctx context.Context, names []types.RoleName) error
}
