package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd
}

func sqliteEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "seed.db"))
	t.Setenv("BCRYPT_COST", "4")
}

func seedConfigFor(email string) *seedConfig {
	return &seedConfig{
		email:     email,
		password:  "Password123!",
		firstName: "Root",
		lastName:  "Admin",
		timeout:   defaultSeedTimeout,
	}
}

func TestRunSeed_CreaYEsIdempotente(t *testing.T) {
	sqliteEnv(t)

	var out bytes.Buffer
	require.NoError(t, runSeed(newTestCmd(&out), nil, seedConfigFor("root@example.com")))
	assert.Contains(t, out.String(), "creado con id 1")

	out.Reset()
	require.NoError(t, runSeed(newTestCmd(&out), nil, seedConfigFor("root@example.com")))
	assert.Contains(t, out.String(), "ya existe")
}

func TestRunSeed_PasswordDesdeEntorno(t *testing.T) {
	sqliteEnv(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "FromEnv123!")

	sc := seedConfigFor("env@example.com")
	sc.password = ""
	var out bytes.Buffer
	require.NoError(t, runSeed(newTestCmd(&out), nil, sc))
	assert.Contains(t, out.String(), "creado")
}

func TestRunSeed_CuentaInvalida(t *testing.T) {
	sqliteEnv(t)

	sc := seedConfigFor("root@example.com")
	sc.password = "corta"
	err := runSeed(newTestCmd(&bytes.Buffer{}), nil, sc)
	require.Error(t, err)

	oerr, ok := oops.AsOops(err)
	require.True(t, ok)
	assert.Equal(t, "SEED_INVALID", oerr.Code())
	assert.Contains(t, err.Error(), "Password is too short")
}

func TestRunSeed_DriverDesconocido(t *testing.T) {
	sqliteEnv(t)
	t.Setenv("STORE_DRIVER", "mongo")

	err := runSeed(newTestCmd(&bytes.Buffer{}), nil, seedConfigFor("root@example.com"))
	require.Error(t, err)
	oerr, ok := oops.AsOops(err)
	require.True(t, ok)
	assert.Equal(t, "DB_CONNECT_FAILED", oerr.Code())
}

func TestNewSeedCmd_Flags(t *testing.T) {
	cmd := NewSeedCmd()
	for _, name := range []string{"email", "password", "first-name", "last-name", "company", "timeout"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
