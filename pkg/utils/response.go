package utils

import (
	"errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "sourcing-system/pkg/errors"
)

// HttpResponse is the uniform envelope every endpoint answers with.
type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ErrorResponse logs the full error chain and answers with the user-facing
// message only; internal details never leave the server.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := apperrors.HTTPStatus(err)
	message := err.Error()

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		message = httpErr.Message
		logger.Error("request failed",
			zap.Int("code", code),
			zap.String("message", httpErr.Message),
			zap.Any("context", httpErr.Context),
			zap.Error(httpErr.Err),
		)
	} else {
		logger.Error("request failed", zap.Int("code", code), zap.Error(err))
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: message,
	})
}
