package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/master-auth-service/internal/domain/entity"
	"github.com/jhoicas/master-auth-service/internal/domain/repository"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

type RoleRepo struct {
	q Querier
}

func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

func (r *RoleRepo) FindByName(ctx context.Context, name types.RoleName) (*entity.Role, error) {
	var id int64
	err := r.q.QueryRowContext(ctx, `SELECT id FROM roles WHERE name = ?`, name.String()).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find role by name: %w", err)
	}
	return &entity.Role{ID: id, Name: name}, nil
}

func (r *RoleRepo) Seed(ctx context.Context, names []types.RoleName) error {
	for _, name := range names {
		if _, err := r.q.ExecContext(ctx, `INSERT OR IGNORE INTO roles (name) VALUES (?)`, name.String()); err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}
