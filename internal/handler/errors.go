package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"jobboard/internal/middleware"
	"jobboard/internal/model"

	"github.com/gin-gonic/gin"
)

// respondError writes err as {"error": message} with the status for its kind.
// Internal errors are logged and answered with a generic message.
func respondError(c *gin.Context, err error) {
	var appErr *model.AppError
	if !errors.As(err, &appErr) || appErr.Kind == model.KindInternal {
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("request_id", c.GetString(middleware.RequestIDKey)),
			slog.Any("error", err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(statusFor(appErr.Kind), gin.H{"error": appErr.Message})
}

func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindValidation, model.KindAuthentication:
		return http.StatusBadRequest
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// bindJSON decodes the request body into dst, answering 400 on malformed JSON.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}
