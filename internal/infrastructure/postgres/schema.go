package postgres

import (
	"context"
	"fmt"
)

// schema se aplica en orden; cada sentencia es idempotente.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id             BIGSERIAL PRIMARY KEY,
		email          TEXT NOT NULL UNIQUE,
		first_name     TEXT NOT NULL,
		last_name      TEXT NOT NULL,
		password_hash  TEXT NOT NULL,
		company_name   TEXT NULL,
		role_id        BIGINT NOT NULL REFERENCES roles(id),
		enabled        BOOLEAN NOT NULL DEFAULT TRUE,
		account_locked BOOLEAN NOT NULL DEFAULT FALSE,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_role_id ON users (role_id)`,
}

// EnsureSchema crea las tablas si no existen. No hay framework de migraciones.
func EnsureSchema(ctx context.Context, q Querier) error {
	for i, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema step %d: %w", i+1, err)
		}
	}
	return nil
}
