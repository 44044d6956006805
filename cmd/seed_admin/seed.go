package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/jhoicas/master-auth-service/internal/application/dto"
	"github.com/jhoicas/master-auth-service/internal/application/usecase"
	"github.com/jhoicas/master-auth-service/internal/domain/failure"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
	"github.com/jhoicas/master-auth-service/internal/infrastructure/security"
	"github.com/jhoicas/master-auth-service/internal/infrastructure/store"
	"github.com/jhoicas/master-auth-service/pkg/config"
)

const defaultSeedTimeout = 30 * time.Second

// seedConfig flags del comando.
type seedConfig struct {
	email     string
	password  string
	firstName string
	lastName  string
	company   string
	timeout   time.Duration
}

// NewSeedCmd crea el comando de siembra.
func NewSeedCmd() *cobra.Command {
	sc := &seedConfig{}

	cmd := &cobra.Command{
		Use:   "seed_admin",
		Short: "Crea la cuenta inicial ROLE_SUPER_ADMIN",
		Long: `Crea el esquema si falta, siembra los roles y registra la cuenta de super administrador.
Es idempotente: si el email ya existe no hace nada.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, args, sc)
		},
	}

	cmd.Flags().StringVar(&sc.email, "email", "", "email de la cuenta")
	cmd.Flags().StringVar(&sc.password, "password", "", "contraseña (por defecto SEED_ADMIN_PASSWORD)")
	cmd.Flags().StringVar(&sc.firstName, "first-name", "Super", "nombre")
	cmd.Flags().StringVar(&sc.lastName, "last-name", "Admin", "apellido")
	cmd.Flags().StringVar(&sc.company, "company", "", "empresa (opcional)")
	cmd.Flags().DurationVar(&sc.timeout, "timeout", defaultSeedTimeout, "timeout de las operaciones de base de datos")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string, sc *seedConfig) error {
	cfg, err := config.Load()
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("operation", "load config").Wrap(err)
	}

	password := sc.password
	if password == "" {
		password = os.Getenv("SEED_ADMIN_PASSWORD")
	}
	role := types.RoleSuperAdmin.String()
	req := dto.RegistrationRequest{
		FirstName: sc.firstName,
		LastName:  sc.lastName,
		Email:     sc.email,
		Password:  password,
		Role:      &role,
	}
	if sc.company != "" {
		req.CompanyName = &sc.company
	}
	reg, f := req.Validate()
	if f != nil {
		return oops.Code("SEED_INVALID").With("operation", "validate account").Wrap(f)
	}

	encoder, err := security.NewPasswordEncoder(cfg.Security.PasswordHasher, cfg.Security.BcryptCost)
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("operation", "password encoder").Wrap(err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), sc.timeout)
	defer cancel()

	cmd.Println("Conectando al almacenamiento...")
	st, err := store.Open(ctx, *cfg)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("driver", cfg.Store.Driver).Wrap(err)
	}
	defer st.Close()

	svc := usecase.NewUserService(st.Tx, st.Users, encoder, nil)
	id, err := svc.CreateUser(ctx, reg)
	var exists failure.EmailAlreadyExists
	switch {
	case errors.As(err, &exists):
		cmd.Println("La cuenta ya existe, no se crea de nuevo")
		return nil
	case err != nil:
		return oops.Code("SEED_FAILED").With("operation", "create super admin").Wrap(err)
	}
	cmd.Printf("Super admin %s creado con id %d\n", reg.Email, id)
	return nil
}
