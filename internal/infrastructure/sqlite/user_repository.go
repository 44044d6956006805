package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

// UserRepo implementa UserRepository sobre SQLite (usable con *sql.DB o *sql.Tx).
type UserRepo struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email types.Email) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = ?)`, email.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by email: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by id: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, selectUser+` WHERE u.id = ?`, id)
}

// FindByIDForUpdate equivale a FindByID: las transacciones abren con BEGIN IMMEDIATE y ya
// tienen el lock de escritura de la base.
func (r *UserRepo) FindByIDForUpdate(ctx context.Context, id int64) (*entity.User, error) {
	return r.FindByID(ctx, id)
}

func (r *UserRepo) FindByEmail(ctx context.Context, email types.Email) (*entity.User, error) {
	return r.findOne(ctx, selectUser+` WHERE u.email = ?`, email.String())
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var (
		row                  record.User
		createdAt, updatedAt int64
	)
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&row.ID, &row.Email, &row.FirstName, &row.LastName, &row.PasswordHash, &row.CompanyName,
		&row.RoleID, &row.RoleName, &row.Enabled, &row.Locked, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	row.CreatedAt = time.UnixMilli(createdAt).UTC()
	row.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return row.ToEntity()
}

// Save inserta (ID 0, asigna el ID generado) o actualiza la cuenta.
func (r *UserRepo) Save(ctx context.Context, user *entity.User) error {
	row := record.FromEntity(user)
	if user.ID == 0 {
		res, err := r.q.ExecContext(ctx, `
			INSERT INTO users (email, first_name, last_name, password_hash, company_name, role_id,
			                   enabled, account_locked, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			row.Email, row.FirstName, row.LastName, row.PasswordHash, row.CompanyName, row.RoleID,
			row.Enabled, row.Locked, row.CreatedAt.UnixMilli(), row.UpdatedAt.UnixMilli(),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return failure.EmailAlreadyExists{}
			}
			return fmt.Errorf("insert user: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert user: last insert id: %w", err)
		}
		user.ID = id
		return nil
	}

	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET email = ?, first_name = ?, last_name = ?, password_hash = ?,
		       company_name = ?, role_id = ?, enabled = ?, account_locked = ?, updated_at = ?
		WHERE id = ?`,
		row.Email, row.FirstName, row.LastName, row.PasswordHash, row.CompanyName,
		row.RoleID, row.Enabled, row.Locked, row.UpdatedAt.UnixMilli(), row.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return failure.EmailAlreadyExists{}
		}
		return fmt.Errorf("update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: rows affected: %w", err)
	}
	if n == 0 {
		return failure.IdNotExists{}
	}
	return nil
}

func (r *UserRepo) RemoveByID(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
