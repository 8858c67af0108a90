package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Recover turns a panic in a downstream handler into a 500 handled by the
// app ErrorHandler. The stack is logged, never returned to the client.
func Recover(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Locals(RequestIDLocalKey).(string)
				log.Error().
					Str("event", "panic_recovered").
					Str("request_id", rid).
					Str("panic", fmt.Sprint(r)).
					Bytes("stack", debug.Stack()).
					Send()
				err = fiber.ErrInternalServerError
			}
		}()
		return c.Next()
	}
}
