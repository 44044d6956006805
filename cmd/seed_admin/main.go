// seed_admin crea el esquema, siembra los roles y da de alta la primera cuenta
// ROLE_SUPER_ADMIN, que el registro público nunca concede.
//
// Uso: go run ./cmd/seed_admin --email root@example.com --first-name Root --last-name Admin
// La contraseña se toma de --password o de SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewSeedCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
