package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jonboulle/clockwork"

	"github.com/jhoicas/master-auth-service/internal/application/auth"
	"github.com/jhoicas/master-auth-service/internal/application/usecase"
	"github.com/jhoicas/master-auth-service/internal/infrastructure/lockout"
	"github.com/jhoicas/master-auth-service/internal/infrastructure/security"
	"github.com/jhoicas/master-auth-service/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/master-auth-service/internal/interfaces/http"
	"github.com/jhoicas/master-auth-service/pkg/config"
	"github.com/jhoicas/master-auth-service/pkg/jwt"
	"github.com/jhoicas/master-auth-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := store.Open(ctx, *cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer st.Close()

	clock := clockwork.NewRealClock()
	encoder, err := security.NewPasswordEncoder(cfg.Security.PasswordHasher, cfg.Security.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("codificador de contraseñas")
	}
	signer, err := jwt.NewSigner(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration, clock)
	if err != nil {
		log.Fatal().Err(err).Msg("firmador JWT")
	}
	attempts := lockout.NewMemoryStore(cfg.Security.LoginMaxAttempts, cfg.Security.LoginCooldown, clock)

	userSvc := usecase.NewUserService(st.Tx, st.Users, encoder, clock)
	authSvc := auth.NewAuthService(st.Users, encoder, security.NewJWTIssuer(signer), attempts)

	app := httpRouter.NewApp(cfg.App.Name, log.Component("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		if _, statErr := os.Stat(cfg.Docs.File); statErr == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Docs.File,
				Path:     "docs",
				Title:    "Master Auth API",
			}))
		} else {
			log.Warn().Str("file", cfg.Docs.File).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthService: authSvc,
		UserService: userSvc,
		Tokens:      signer,
		Log:         log.Component("http"),
		AppName:     cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
