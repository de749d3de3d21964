package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"saas-economics/internal/errors"
)

const requestIDKey = "request_id"

// RequestIDMiddleware reuses an incoming X-Request-ID or assigns a UUID
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(requestIDKey, id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}

// RequestID returns the ID assigned by RequestIDMiddleware
func RequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RecoverMiddleware turns handler panics into 500 responses
func RecoverMiddleware() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true,
	})
}

// LoggerMiddleware writes one structured line per request
func LoggerMiddleware(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
				zap.String("request_id", RequestID(c)),
			}

			switch {
			case res.Status >= http.StatusInternalServerError:
				logger.Error("request failed", append(fields, zap.Error(err))...)
			case res.Status >= http.StatusBadRequest:
				logger.Warn("request rejected", append(fields, zap.Error(err))...)
			default:
				logger.Info("request", fields...)
			}

			return nil
		}
	}
}

// CORSMiddleware allows the given origins, or all when none are set
func CORSMiddleware(origins []string) echo.MiddlewareFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderXRequestID,
		},
	})
}

// errorHandler renders every error in the JSON error envelope
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		code := string(errors.TypeInternal)
		message := "internal error"

		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			code = http.StatusText(he.Code)
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		} else if e, ok := errors.As(err); ok {
			status = statusFor(e.Type)
			code = string(e.Type)
			message = e.Error()
		} else {
			logger.Error("unhandled error", zap.Error(err))
		}

		resp := ErrorResponse{
			Error:     ErrorBody{Code: code, Message: message},
			RequestID: RequestID(c),
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}

func statusFor(t errors.Type) int {
	switch t {
	case errors.TypeInput, errors.TypeParsing:
		return http.StatusBadRequest
	case errors.TypeNotFound:
		return http.StatusNotFound
	case errors.TypeNotSupported:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
