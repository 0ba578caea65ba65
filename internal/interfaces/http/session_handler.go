package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/application/session"
	"github.com/jhoicas/campus-store/internal/domain"
)

// SessionHandler sesión del cliente.
type SessionHandler struct {
	uc *session.UseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *session.UseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// SignIn godoc
// @Summary      Iniciar sesión
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignInRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session [post]
func (h *SessionHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.SignIn(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Current godoc
// @Summary      Sesión actual
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SignOut godoc
// @Summary      Cerrar sesión
// @Tags         session
// @Success      204
// @Router       /api/session [delete]
func (h *SessionHandler) SignOut(c *fiber.Ctx) error {
	if err := h.uc.SignOut(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MyOrders godoc
// @Summary      Órdenes del usuario con sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session/orders [get]
func (h *SessionHandler) MyOrders(c *fiber.Ctx) error {
	out, err := h.uc.MyOrders(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
