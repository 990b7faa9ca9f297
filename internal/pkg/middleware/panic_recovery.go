package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/nvent/inventory-backend/internal/pkg/logger"
	"github.com/nvent/inventory-backend/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack and
// answers with a generic 500 so internal detail never leaks to the caller.
func PanicRecoveryMiddleware(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					zl.Error("panic recovered",
						logger.Err(err),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())),
					)
					_ = utils.InternalServerErrorResponse(c, "")
				}
			}()
			return next(c)
		}
	}
}
