package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/master-auth-service/internal/application/auth"
	"github.com/jhoicas/master-auth-service/internal/application/usecase"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
	"github.com/jhoicas/master-auth-service/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthService *auth.AuthService
	UserService *usecase.UserService
	Tokens      TokenParser
	Log         *logger.Logger
	AppName     string
}

// NewApp crea la aplicación Fiber con el manejo de errores y los middlewares comunes.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(log))
	app.Use(Metrics())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth
	authHandler := NewAuthHandler(deps.AuthService, deps.Log)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/secret", AuthMiddleware(deps.Tokens), authHandler.Secret)

	// Usuarios: registro público (el token, si viene, decide el rol concedible);
	// el resto exige token del dueño o de un administrador.
	userHandler := NewUserHandler(deps.UserService, deps.Log)
	users := app.Group("/user")
	users.Post("", OptionalAuth(deps.Tokens), userHandler.Create)

	authn := AuthMiddleware(deps.Tokens)
	guard := RequireSelfOrAdmin()
	users.Get("/:id", authn, guard, userHandler.Get)
	users.Put("/:id", authn, guard, userHandler.Update)
	users.Put("/:id/password", authn, guard, userHandler.ChangePassword)
	users.Delete("/:id", authn, guard, userHandler.Delete)
}

// AdminRoles roles con permisos de administración, para RequireRole.
func AdminRoles() []string {
	return []string{types.RoleAdmin.String(), types.RoleSuperAdmin.String()}
}
