package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/master-auth-service/internal/domain/entity"
	"github.com/jhoicas/master-auth-service/internal/domain/repository"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL (usable con pool o tx).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// FindByName obtiene el rol sembrado con ese nombre; (nil, nil) si no existe.
func (r *RoleRepo) FindByName(ctx context.Context, name types.RoleName) (*entity.Role, error) {
	var id int64
	err := r.q.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, name.String()).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find role by name: %w", err)
	}
	return &entity.Role{ID: id, Name: name}, nil
}

// Seed inserta los roles que falten.
func (r *RoleRepo) Seed(ctx context.Context, names []types.RoleName) error {
	for _, name := range names {
		_, err := r.q.Exec(ctx,
			`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name.String())
		if err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}
