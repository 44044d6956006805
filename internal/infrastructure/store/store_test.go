package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/master-auth-service/internal/domain/types"
	"github.com/jhoicas/master-auth-service/internal/infrastructure/store"
	"github.com/jhoicas/master-auth-service/pkg/config"
)

func sqliteConfig(path string) config.Config {
	return config.Config{Store: config.StoreConfig{Driver: config.StoreDriverSQLite, SQLitePath: path}}
}

func TestOpen_SQLiteSiembraRoles(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, sqliteConfig(filepath.Join(t.TempDir(), "nested", "auth.db")))
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, config.StoreDriverSQLite, s.Driver)
	for _, name := range types.RoleNames() {
		role, err := s.Roles.FindByName(ctx, name)
		require.NoError(t, err)
		require.NotNil(t, role, name.String())
		assert.Equal(t, name, role.Name)
	}
}

func TestOpen_ReabrirEsIdempotente(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(filepath.Join(t.TempDir(), "auth.db"))

	first, err := store.Open(ctx, cfg)
	require.NoError(t, err)
	role, err := first.Roles.FindByName(ctx, types.RoleAdmin)
	require.NoError(t, err)
	first.Close()

	second, err := store.Open(ctx, cfg)
	require.NoError(t, err)
	defer second.Close()
	again, err := second.Roles.FindByName(ctx, types.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, role.ID, again.ID)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := store.Open(context.Background(), config.Config{Store: config.StoreConfig{Driver: "mongo"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}
