package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biztime-api/internal/application/billing"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// InvoiceHandler maneja las peticiones HTTP para el recurso Invoice.
type InvoiceHandler struct {
	uc  *usecase.InvoiceUseCase
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// parseID interpreta el :id de la ruta. Un id no numérico se trata igual que
// un id que no existe: 404.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil
}

func invoiceNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).
		JSON(dto.NewError(fiber.StatusNotFound, "factura no encontrada"))
}

// List devuelve {id, comp_code} de todas las facturas.
// GET /invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create crea una factura. Requiere comp_code y amt.
// POST /invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewError(fiber.StatusBadRequest, "cuerpo inválido"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InvoiceEnvelope{Invoice: *out})
}

// GetByID devuelve el detalle de la factura con su empresa embebida.
// GET /invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invoiceNotFound(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.InvoiceDetailEnvelope{Invoice: *out})
}

// Update actualiza amt y estado de pago. Requiere 'amt' y 'paid'.
// PUT /invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invoiceNotFound(c)
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewError(fiber.StatusBadRequest, "cuerpo inválido"))
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.InvoiceEnvelope{Invoice: *out})
}

// Delete elimina la factura.
// DELETE /invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invoiceNotFound(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// PDF devuelve la representación imprimible de la factura.
// GET /invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invoiceNotFound(c)
	}
	data, err := h.pdf.Generate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
