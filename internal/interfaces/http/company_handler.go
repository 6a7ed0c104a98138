package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empresa (code derivado del nombre)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewError(fiber.StatusBadRequest, "cuerpo inválido"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompanyEnvelope{Company: *out})
}

// GetByCode godoc
// @Summary      Vista compuesta de una empresa (industrias + facturas)
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "Code de la empresa"
// @Success      200   {object}  dto.CompanyDetailEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code} [get]
func (h *CompanyHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CompanyDetailEnvelope{Company: *out})
}

// Update godoc
// @Summary      Reemplazar name y description de una empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Code de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos nuevos"
// @Success      200   {object}  dto.CompanyEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewError(fiber.StatusBadRequest, "cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Params("code"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CompanyEnvelope{Company: *out})
}

// Delete godoc
// @Summary      Eliminar empresa (facturas y asociaciones caen en cascada)
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "Code de la empresa"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("code")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}
