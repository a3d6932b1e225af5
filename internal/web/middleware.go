package web

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// RequestLogger tags every request with an id and logs method, path,
// status, and elapsed time once the handler returns.
func RequestLogger(logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			id := uuid.NewString()
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.WithFields(log.Fields{
				"request_id":  id,
				"method":      c.Request().Method,
				"path":        c.Request().URL.Path,
				"status":      c.Response().Status,
				"duration_ms": durationToMillis(time.Since(start)),
			}).Info("workflow.request")

			return err
		}
	}
}

func durationToMillis(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
