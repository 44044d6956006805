package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/master-auth-service/internal/application/auth"
	"github.com/jhoicas/master-auth-service/internal/application/dto"
	"github.com/jhoicas/master-auth-service/pkg/logger"
)

// SecretMessage cuerpo de GET /auth/secret.
const SecretMessage = "You passed the authorization flow!"

// AuthHandler maneja login y la ruta de comprobación del token.
type AuthHandler struct {
	uc  *auth.AuthService
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {string}  string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	login, f := in.Validate()
	if f != nil {
		return writeFailure(c, f)
	}
	out, err := h.uc.AuthenticateUser(c.UserContext(), login)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Secret responde solo si el token es válido.
// @Router       /auth/secret [get]
func (h *AuthHandler) Secret(c *fiber.Ctx) error {
	return c.SendString(SecretMessage)
}
