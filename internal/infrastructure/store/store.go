// Package store abre el backend de persistencia elegido en la configuración y expone sus
// repositorios detrás de los contratos de dominio.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/master-auth-service/internal/application/usecase"
	"github.com/jhoicas/master-auth-service/internal/domain/repository"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
	"github.com/jhoicas/master-auth-service/internal/infrastructure/postgres"
	"github.com/jhoicas/master-auth-service/internal/infrastructure/sqlite"
	"github.com/jhoicas/master-auth-service/pkg/config"
)

// Store repositorios listos para usar. Close libera el pool o la base.
type Store struct {
	Users  repository.UserRepository
	Roles  repository.RoleRepository
	Tx     usecase.TxRunner
	Driver string
	close  func()
}

// Close libera los recursos del backend.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open conecta con el backend, crea el esquema si falta y siembra un rol por cada RoleName.
func Open(ctx context.Context, cfg config.Config) (*Store, error) {
	var (
		s   *Store
		err error
	)
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		s, err = openPostgres(ctx, cfg.DB)
	case config.StoreDriverSQLite:
		s, err = openSQLite(ctx, cfg.Store.SQLitePath)
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Roles.Seed(ctx, types.RoleNames()); err != nil {
		s.Close()
		return nil, fmt.Errorf("sembrar roles: %w", err)
	}
	return s, nil
}

func openPostgres(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("esquema PostgreSQL: %w", err)
	}
	return &Store{
		Users:  postgres.NewUserRepository(pool),
		Roles:  postgres.NewRoleRepository(pool),
		Tx:     postgres.NewTxRunner(pool),
		Driver: config.StoreDriverPostgres,
		close:  pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, path string) (*Store, error) {
	if path != sqlite.MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("directorio SQLite: %w", err)
		}
	}
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("abrir SQLite: %w", err)
	}
	if err := sqlite.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("esquema SQLite: %w", err)
	}
	return &Store{
		Users:  sqlite.NewUserRepository(db),
		Roles:  sqlite.NewRoleRepository(db),
		Tx:     sqlite.NewTxRunner(db),
		Driver: config.StoreDriverSQLite,
		close:  func() { _ = db.Close() },
	}, nil
}
