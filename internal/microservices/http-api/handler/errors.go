package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"fightcard/internal/microservices/http-api/service"
	"fightcard/internal/shared"

	"github.com/gin-gonic/gin"
)

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrUnauthenticated), errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, shared.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": msg}. Client errors echo the message;
// server errors are logged and answered generically.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)

	switch status {
	case http.StatusServiceUnavailable:
		slog.ErrorContext(c.Request.Context(), "storage_unavailable", "route", c.FullPath(), "error", err)
		c.JSON(status, gin.H{"error": "service temporarily unavailable, try again"})
	case http.StatusInternalServerError:
		slog.ErrorContext(c.Request.Context(), "request_failed", "route", c.FullPath(), "error", err)
		c.JSON(status, gin.H{"error": "internal server error"})
	case http.StatusUnauthorized:
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(status, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(status, gin.H{"error": "authentication required"})
	default:
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// bindError answers a request whose body or query failed validation.
func bindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// paramID parses a positive int64 path parameter.
func paramID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %w", name, shared.ErrInvalidArgument)
	}
	return id, nil
}
