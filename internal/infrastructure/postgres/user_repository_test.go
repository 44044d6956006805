package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/master-auth-service/internal/domain/entity"
	"github.com/jhoicas/master-auth-service/internal/domain/failure"
	"github.com/jhoicas/master-auth-service/internal/domain/repository"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

var (
	userColumns = []string{
		"id", "email", "first_name", "last_name", "password_hash", "company_name",
		"role_id", "name", "enabled", "account_locked", "created_at", "updated_at",
	}
	createdAt = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
)

func ptr(s string) *string { return &s }

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return mock
}

func mustEmail(t *testing.T, raw string) types.Email {
	t.Helper()
	e, f := types.NewEmail(raw)
	require.Nil(t, f)
	return e
}

func newUser(t *testing.T) *entity.User {
	t.Helper()
	first, f := types.NewName("Ada")
	require.Nil(t, f)
	last, f := types.NewName("Lovelace")
	require.Nil(t, f)
	return &entity.User{
		Email:     mustEmail(t, "ada@example.com"),
		FirstName: first,
		LastName:  last,
		Password:  types.NewPasswordHash("$2a$04$hash"),
		Role:      entity.Role{ID: 1, Name: types.RoleUser},
		Enabled:   true,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestUserRepo_FindByEmail(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantNil   bool
		wantErr   bool
	}{
		{
			name: "encontrado",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(userColumns).AddRow(
					int64(4), "ada@example.com", "Ada", "Lovelace", "$2a$04$hash", ptr("Acme"),
					int64(2), "ROLE_ADMIN", true, false, createdAt, createdAt,
				)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.email = $1`)).
					WithArgs("ada@example.com").
					WillReturnRows(rows)
			},
		},
		{
			name: "sin registro",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.email = $1`)).
					WithArgs("ada@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "error de conexión",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.email = $1`)).
					WithArgs("ada@example.com").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setupMock(mock)

			got, err := NewUserRepository(mock).FindByEmail(context.Background(), mustEmail(t, "ada@example.com"))
			switch {
			case tt.wantErr:
				require.Error(t, err)
				assert.Contains(t, err.Error(), "connection refused")
			case tt.wantNil:
				require.NoError(t, err)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(4), got.ID)
				assert.Equal(t, types.RoleAdmin, got.Role.Name)
				company, ok := got.CompanyName.Get()
				require.True(t, ok)
				assert.Equal(t, "Acme", company.String())
			}
			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestUserRepo_SaveInsertaYAsignaID(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("ada@example.com", "Ada", "Lovelace", "$2a$04$hash", (*string)(nil), int64(1),
			true, false, createdAt, createdAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	u := newUser(t)
	require.NoError(t, NewUserRepository(mock).Save(context.Background(), u))
	assert.Equal(t, int64(11), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SaveUnicidadEsFailure(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("ada@example.com", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := NewUserRepository(mock).Save(context.Background(), newUser(t))
	assert.Equal(t, failure.EmailAlreadyExists{}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SaveActualizaFilaBorradaEsIdNotExists(t *testing.T) {
	mock := newMock(t)
	u := newUser(t)
	u.ID = 11
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET`)).
		WithArgs(int64(11), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := NewUserRepository(mock).Save(context.Background(), u)
	assert.Equal(t, failure.IdNotExists{}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_FindByIDForUpdateBloqueaLaFila(t *testing.T) {
	mock := newMock(t)
	rows := pgxmock.NewRows(userColumns).AddRow(
		int64(4), "ada@example.com", "Ada", "Lovelace", "$2a$04$hash", (*string)(nil),
		int64(1), "ROLE_USER", true, false, createdAt, createdAt,
	)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.id = $1 FOR UPDATE OF u`)).
		WithArgs(int64(4)).
		WillReturnRows(rows)

	got, err := NewUserRepository(mock).FindByIDForUpdate(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SaveActualiza(t *testing.T) {
	mock := newMock(t)
	u := newUser(t)
	u.ID = 11
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET`)).
		WithArgs(int64(11), "ada@example.com", "Ada", "Lovelace", "$2a$04$hash",
			(*string)(nil), int64(1), true, false, createdAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, NewUserRepository(mock).Save(context.Background(), u))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ExistsYRemove(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`)).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewUserRepository(mock)
	exists, err := repo.ExistsByID(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, repo.RemoveByID(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_FindByNameYSeed(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM roles WHERE name = $1`)).
		WithArgs("ROLE_ADMIN").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM roles WHERE name = $1`)).
		WithArgs("ROLE_SUPER_ADMIN").
		WillReturnError(pgx.ErrNoRows)
	for _, name := range types.RoleNames() {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`)).
			WithArgs(name.String()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	repo := NewRoleRepository(mock)
	role, err := repo.FindByName(context.Background(), types.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, &entity.Role{ID: 2, Name: types.RoleAdmin}, role)

	role, err = repo.FindByName(context.Background(), types.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Nil(t, role)

	require.NoError(t, repo.Seed(context.Background(), types.RoleNames()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_CommitYRollback(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users`)).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	runner := NewTxRunner(mock)
	err := runner.Run(context.Background(), func(users repository.UserRepository, _ repository.RoleRepository) error {
		return users.RemoveByID(context.Background(), 1)
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()
	err = runner.Run(context.Background(), func(repository.UserRepository, repository.RoleRepository) error {
		return failure.IdNotExists{}
	})
	assert.Equal(t, failure.IdNotExists{}, err, "el failure atraviesa la transacción sin envolver")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS roles`)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS users`)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE INDEX IF NOT EXISTS idx_users_role_id`)).
		WillReturnResult(pgxmock.NewResult("CREATE INDEX", 0))

	require.NoError(t, EnsureSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatementName(t *testing.T) {
	assert.Equal(t, "SELECT", statementName("\n\t\tselect id from roles"))
	assert.Equal(t, "unknown", statementName("   "))
}
