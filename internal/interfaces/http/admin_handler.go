package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/campus-store/internal/application/admin"
	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/application/slip"
	"github.com/jhoicas/campus-store/internal/application/verification"
	"github.com/jhoicas/campus-store/internal/domain"
)

// AdminHandler panel de administración: acceso, verificación y entrega de órdenes.
type AdminHandler struct {
	auth   *admin.UseCase
	verify *verification.UseCase
	slips  *slip.UseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(auth *admin.UseCase, verify *verification.UseCase, slips *slip.UseCase) *AdminHandler {
	return &AdminHandler{auth: auth, verify: verify, slips: slips}
}

// Login godoc
// @Summary      Acceso al panel
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminLoginRequest  true  "Contraseña"
// @Success      200   {object}  dto.AdminLoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var in dto.AdminLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	if in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password es requerido"})
	}
	out, err := h.auth.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar el panel (invalida todos los tokens)
// @Tags         admin
// @Security     Bearer
// @Success      204
// @Router       /api/admin/logout [post]
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Verify godoc
// @Summary      Verificar un comprobante por ID
// @Description  found=false indica un posible comprobante falso.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.VerifyOrderResponse
// @Router       /api/admin/orders/verify/{id} [get]
func (h *AdminHandler) Verify(c *fiber.Ctx) error {
	out, err := h.verify.Verify(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Marcar orden como entregada
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id}/complete [post]
func (h *AdminHandler) Complete(c *fiber.Ctx) error {
	out, err := h.verify.MarkCompleted(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListOrders godoc
// @Summary      Listar órdenes
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | completed"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/orders [get]
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	out, err := h.verify.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Contadores del panel
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderSummaryResponse
// @Router       /api/admin/orders/summary [get]
func (h *AdminHandler) Summary(c *fiber.Ctx) error {
	out, err := h.verify.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CheckFingerprint godoc
// @Summary      Comparar la huella impresa con la orden guardada
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Param        fp   path  string  true  "Huella impresa"
// @Success      200  {object}  dto.FingerprintCheckResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id}/fingerprint/{fp} [get]
func (h *AdminHandler) CheckFingerprint(c *fiber.Ctx) error {
	out, err := h.verify.CheckFingerprint(c.UserContext(), c.Params("id"), c.Params("fp"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar órdenes
// @Tags         admin
// @Security     Bearer
// @Produce      application/xml
// @Produce      text/csv
// @Param        format  query  string  false  "xml (por defecto) | csv"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/export [get]
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	body, contentType, err := h.slips.Export(c.UserContext(), c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	ext := "xml"
	if contentType == "text/csv" {
		ext = "csv"
	}
	c.Set(fiber.HeaderContentType, contentType+"; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.`+ext+`"`)
	return c.Send(body)
}
