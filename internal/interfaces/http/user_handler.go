package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/master-auth-service/internal/application/dto"
	"github.com/jhoicas/master-auth-service/internal/application/usecase"
	"github.com/jhoicas/master-auth-service/pkg/logger"
)

// UserHandler maneja el ciclo de vida de las cuentas.
type UserHandler struct {
	uc  *usecase.UserService
	log *logger.Logger
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar usuario
// @Description  Un rol elevado solo se concede si el token del llamante puede otorgarlo; si no, ROLE_USER.
// @Tags         user
// @Accept       json
// @Param        body  body  dto.RegistrationRequest  true  "datos de registro"
// @Success      201
// @Failure      400   {string}  string
// @Failure      409   {string}  string
// @Router       /user [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	reg, f := in.Validate()
	if f != nil {
		return writeFailure(c, f)
	}
	reg.Role = usecase.GrantableRole(reg.Role, callerRole(c))
	id, err := h.uc.CreateUser(c.UserContext(), reg)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Location("/user/" + strconv.FormatInt(id, 10))
	c.Status(fiber.StatusCreated)
	return nil
}

// Get godoc
// @Summary      Obtener usuario
// @Tags         user
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {string}  string
// @Router       /user/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, ok := userID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetUser(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario (parcial)
// @Description  Cambiar el rol requiere un llamante capaz de otorgarlo; un administrador solo
// @Description  modifica cuentas de un rol que él mismo puede otorgar.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del usuario"
// @Param        body  body  dto.UserUpdateRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {string}  string
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {string}  string
// @Router       /user/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := userID(c)
	if !ok {
		return invalidID(c)
	}
	if ok, err := h.guardTarget(c, id); !ok {
		return err
	}
	var in dto.UserUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	upd, f := in.Validate()
	if f != nil {
		return writeFailure(c, f)
	}
	if role, set := upd.Role.Get(); set && usecase.GrantableRole(role, callerRole(c)) != role {
		return forbidden(c)
	}
	out, err := h.uc.UpdateUser(c.UserContext(), id, upd)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña
// @Tags         user
// @Accept       json
// @Param        id    path  int                        true  "ID del usuario"
// @Param        body  body  dto.ChangePasswordRequest  true  "nueva contraseña"
// @Success      200
// @Failure      400   {string}  string
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {string}  string
// @Router       /user/{id}/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	id, ok := userID(c)
	if !ok {
		return invalidID(c)
	}
	if ok, err := h.guardTarget(c, id); !ok {
		return err
	}
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	pw, f := in.Validate()
	if f != nil {
		return writeFailure(c, f)
	}
	if err := h.uc.UpdatePassword(c.UserContext(), id, pw); err != nil {
		return writeError(c, h.log, err)
	}
	c.Status(fiber.StatusOK)
	return nil
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         user
// @Param        id   path  int  true  "ID del usuario"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {string}  string
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := userID(c)
	if !ok {
		return invalidID(c)
	}
	if ok, err := h.guardTarget(c, id); !ok {
		return err
	}
	if err := h.uc.RemoveUser(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err)
	}
	c.Status(fiber.StatusNoContent)
	return nil
}

// guardTarget impide que un administrador modifique una cuenta de rango superior al que
// puede otorgar (ADMIN no toca a SUPER_ADMIN). El dueño de la cuenta siempre pasa.
// Si devuelve false la respuesta ya está escrita.
func (h *UserHandler) guardTarget(c *fiber.Ctx, id int64) (bool, error) {
	if id == GetUserID(c) {
		return true, nil
	}
	target, err := h.uc.RoleOf(c.UserContext(), id)
	if err != nil {
		return false, writeError(c, h.log, err)
	}
	if usecase.GrantableRole(target, callerRole(c)) != target {
		return false, forbidden(c)
	}
	return true, nil
}

func userID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
}
