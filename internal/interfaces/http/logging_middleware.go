package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cerveceria-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status y duración.
// El requestid lo inyecta el middleware de Fiber antes que este.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		ev := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
