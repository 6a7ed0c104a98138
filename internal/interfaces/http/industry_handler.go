package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// IndustryHandler maneja las peticiones HTTP para industrias y su asociación
// con empresas.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List devuelve una fila por asociación industria↔empresa.
// GET /industries
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create crea una industria. Requiere code e industry.
// POST /industries
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewError(fiber.StatusBadRequest, "cuerpo inválido"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IndustryEnvelope{Industry: *out})
}

// Link asocia una industria a una empresa, validando que ambas existan
// (la industria se comprueba primero).
// PUT /industries
func (h *IndustryHandler) Link(c *fiber.Ctx) error {
	var in dto.CreateIndustryLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewError(fiber.StatusBadRequest, "cuerpo inválido"))
	}
	out, err := h.uc.Link(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IndustryLinkEnvelope{IndustryCompany: *out})
}
