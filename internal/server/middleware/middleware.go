package middleware

import (
	"cosmossdk.io/log"
	"github.com/labstack/echo/v4"
)

func LoggingMiddleware(logger log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			logger.Info("Received request", "method", req.Method, "path", req.URL.Path)
			logger.Debug("Request headers", "headers", req.Header)
			return next(c)
		}
	}
}
