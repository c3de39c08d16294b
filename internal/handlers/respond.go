package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/crm_pos_app/internal/apperrors"
	"github.com/SscSPs/crm_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Client errors carry the error text,
// server errors only the generic message.
func respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrContention):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= http.StatusBadRequest && appErr.Code < http.StatusInternalServerError {
		status = appErr.Code
	}

	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// requireUserID reads the authenticated user or answers 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func bindJSON(c *gin.Context, req any, op string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON for "+op, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

func bindQuery(c *gin.Context, q any) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return false
	}
	return true
}
