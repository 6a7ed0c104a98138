package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
)

// respondError mapea un error de dominio al sobre JSON único de la API:
// ErrInvalidInput → 400, ErrNotFound → 404, cualquier otro → 500 (error de
// persistencia u otro fallo; se devuelve el detalle en el mensaje). No se
// envían respuestas parciales: el primer error detectado corta la petición.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(dto.NewError(status, err.Error()))
}
