package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/master-auth-service/internal/domain/entity"
	"github.com/jhoicas/master-auth-service/internal/domain/failure"
	"github.com/jhoicas/master-auth-service/internal/domain/repository"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
	"github.com/jhoicas/master-auth-service/internal/infrastructure/record"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const selectUser = `
		SELECT u.id, u.email, u.first_name, u.last_name, u.password_hash, u.company_name,
		       u.role_id, r.name, u.enabled, u.account_locked, u.created_at, u.updated_at
		FROM users u JOIN roles r ON r.id = u.role_id`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// ExistsByEmail indica si ya hay una cuenta con ese email.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email types.Email) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by email: %w", err)
	}
	return exists, nil
}

// ExistsByID indica si la cuenta existe.
func (r *UserRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by id: %w", err)
	}
	return exists, nil
}

// FindByID obtiene un usuario por ID.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, selectUser+` WHERE u.id = $1`, id)
}

// FindByIDForUpdate obtiene el usuario bloqueando la fila hasta el fin de la transacción.
// Solo tiene efecto con un Querier transaccional.
func (r *UserRepo) FindByIDForUpdate(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, selectUser+` WHERE u.id = $1 FOR UPDATE OF u`, id)
}

// FindByEmail obtiene un usuario por email.
func (r *UserRepo) FindByEmail(ctx context.Context, email types.Email) (*entity.User, error) {
	return r.findOne(ctx, selectUser+` WHERE u.email = $1`, email.String())
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var row record.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&row.ID, &row.Email, &row.FirstName, &row.LastName, &row.PasswordHash, &row.CompanyName,
		&row.RoleID, &row.RoleName, &row.Enabled, &row.Locked, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return row.ToEntity()
}

// Save inserta (ID 0, asigna el ID generado) o actualiza la cuenta.
func (r *UserRepo) Save(ctx context.Context, user *entity.User) error {
	row := record.FromEntity(user)
	if user.ID == 0 {
		query := `
		INSERT INTO users (email, first_name, last_name, password_hash, company_name, role_id,
		                   enabled, account_locked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
		err := r.q.QueryRow(ctx, query,
			row.Email, row.FirstName, row.LastName, row.PasswordHash, row.CompanyName, row.RoleID,
			row.Enabled, row.Locked, row.CreatedAt, row.UpdatedAt,
		).Scan(&user.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return failure.EmailAlreadyExists{}
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	}

	query := `
		UPDATE users SET email = $2, first_name = $3, last_name = $4, password_hash = $5,
		       company_name = $6, role_id = $7, enabled = $8, account_locked = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		row.ID, row.Email, row.FirstName, row.LastName, row.PasswordHash,
		row.CompanyName, row.RoleID, row.Enabled, row.Locked, row.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return failure.EmailAlreadyExists{}
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return failure.IdNotExists{}
	}
	return nil
}

// RemoveByID elimina un usuario por ID.
func (r *UserRepo) RemoveByID(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
