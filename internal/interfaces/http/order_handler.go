package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/campus-store/internal/application/checkout"
	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/application/slip"
	"github.com/jhoicas/campus-store/internal/domain"
)

// OrderHandler checkout y descarga del comprobante.
type OrderHandler struct {
	checkout *checkout.Service
	slips    *slip.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(checkout *checkout.Service, slips *slip.UseCase) *OrderHandler {
	return &OrderHandler{checkout: checkout, slips: slips}
}

// Create godoc
// @Summary      Generar comprobante a partir del carrito
// @Description  Con sesión iniciada se usan el nombre y email del usuario. El carrito queda vacío.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return respondError(c, domain.ErrInvalidInput)
		}
	}
	in.UserAgent = c.Get(fiber.HeaderUserAgent)
	out, err := h.checkout.CreateOrder(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Slip godoc
// @Summary      Descargar el comprobante en PDF
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/slip [get]
func (h *OrderHandler) Slip(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.slips.RenderPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="order-slip-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
