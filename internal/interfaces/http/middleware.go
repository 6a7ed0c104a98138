package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

const (
	// RequestIDHeader cabecera de correlación de peticiones.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestID asegura que cada petición tenga un id de correlación: reutiliza
// el X-Request-ID entrante o genera un UUID, lo guarda en locals y lo refleja
// en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(requestIDKey, requestID)
		c.Set(RequestIDHeader, requestID)
		return c.Next()
	}
}

// GetRequestID devuelve el id de correlación de la petición (vacío si no hay).
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// AccessLog registra cada petición con método, ruta, status y duración.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
