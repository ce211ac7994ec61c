package contract

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorHandler maps handler errors onto status codes and ErrorBody payloads.
// Authorization failures answer 401 like authentication failures unless
// strictForbidden is set, in which case they answer 403.
func ErrorHandler(logger *zap.Logger, strictForbidden bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, body := Classify(err, strictForbidden)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err),
			)
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Warn("write error response", zap.Error(err))
		}
	}
}

// Classify decides the status and body for err.
func Classify(err error, strictForbidden bool) (int, ErrorBody) {
	var (
		ve *ValidationError
		nf *NotFoundError
		ie *InternalError
		he *echo.HTTPError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ErrorBody{Message: ve.Message, Field: ve.Field}
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorBody{Message: "Unauthorized"}
	case errors.Is(err, ErrForbidden):
		if strictForbidden {
			return http.StatusForbidden, ErrorBody{Message: "Forbidden"}
		}
		return http.StatusUnauthorized, ErrorBody{Message: "Unauthorized"}
	case errors.As(err, &nf):
		return http.StatusNotFound, ErrorBody{Message: nf.Error()}
	case errors.As(err, &ie):
		return http.StatusInternalServerError, ErrorBody{Message: ie.Message}
	case errors.As(err, &he):
		if he.Code >= http.StatusInternalServerError {
			return he.Code, ErrorBody{Message: http.StatusText(he.Code)}
		}
		return he.Code, ErrorBody{Message: fmt.Sprint(he.Message)}
	default:
		return http.StatusInternalServerError, ErrorBody{Message: "Internal Server Error"}
	}
}
