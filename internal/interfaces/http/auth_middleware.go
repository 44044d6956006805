package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/master-auth-service/internal/application/dto"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
	"github.com/jhoicas/master-auth-service/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// TokenParser valida un token firmado y devuelve sus claims. Lo implementa *jwt.Signer.
type TokenParser interface {
	Parse(token string) (*jwt.Claims, error)
}

type authError struct {
	status int
	body   dto.ErrorResponse
}

var (
	errMissingHeader = &authError{fiber.StatusUnauthorized, dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}}
	errBadScheme     = &authError{fiber.StatusUnauthorized, dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}}
	errEmptyToken    = &authError{fiber.StatusUnauthorized, dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}}
	errInvalidToken  = &authError{fiber.StatusUnauthorized, dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"}}
)

// authenticate extrae y valida el Bearer token; con éxito deja los claims en c.Locals.
func authenticate(c *fiber.Ctx, parser TokenParser) *authError {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return errMissingHeader
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return errBadScheme
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return errEmptyToken
	}
	claims, err := parser.Parse(tokenString)
	if err != nil {
		return errInvalidToken
	}
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalEmail, claims.Email)
	c.Locals(LocalRole, claims.Role)
	return nil
}

// AuthMiddleware exige un Bearer token JWT válido y carga UserID, Email y Role en c.Locals.
func AuthMiddleware(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if aerr := authenticate(c, parser); aerr != nil {
			return c.Status(aerr.status).JSON(aerr.body)
		}
		return c.Next()
	}
}

// OptionalAuth carga los claims si la petición trae Authorization; sin header la petición
// sigue como anónima. Un token presente pero inválido se rechaza igual que en AuthMiddleware.
func OptionalAuth(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}
		if aerr := authenticate(c, parser); aerr != nil {
			return c.Status(aerr.status).JSON(aerr.body)
		}
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir DESPUÉS de AuthMiddleware.
//   - 401 MISSING_ROLE si el token no trae rol.
//   - 403 FORBIDDEN si el rol no está entre los permitidos.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no contiene rol"})
		}
		if _, ok := allowed[role]; !ok {
			return forbidden(c)
		}
		return c.Next()
	}
}

// RequireSelfOrAdmin deja pasar al dueño de la cuenta del parámetro :id o a un rol
// administrativo (vía RequireRole). Debe ir DESPUÉS de AuthMiddleware.
func RequireSelfOrAdmin() fiber.Handler {
	admins := RequireRole(AdminRoles()...)
	return func(c *fiber.Ctx) error {
		if id, ok := userID(c); ok && id == GetUserID(c) {
			return c.Next()
		}
		return admins(c)
	}
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permisos insuficientes"})
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth); 0 si no hay.
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetEmail devuelve el email del token.
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// GetRole devuelve el rol del token ("" si no hay token o el claim viene vacío).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// callerRole rol del llamante como Value Type; None si es anónimo o el claim no es un rol conocido.
func callerRole(c *fiber.Ctx) types.Optional[types.RoleName] {
	role, f := types.ParseRoleName(GetRole(c))
	if f != nil {
		return types.None[types.RoleName]()
	}
	return types.Some(role)
}

