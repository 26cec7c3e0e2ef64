package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/cattle-health-service/pkg/cattle"
	"liyu1981.xyz/cattle-health-service/pkg/common"
)

var (
	errInvalidID         = errors.New("invalid id")
	errTokensUnavailable = errors.New("token service not configured")
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, cattle.ErrInvalidInput),
		errors.Is(err, cattle.ErrUnknownSensor),
		errors.Is(err, errInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, cattle.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, cattle.ErrCowNotFound),
		errors.Is(err, cattle.ErrNoReadings),
		errors.Is(err, cattle.ErrUserNotFound),
		errors.Is(err, cattle.ErrNotificationNotFound):
		return http.StatusNotFound
	case errors.Is(err, cattle.ErrTagTaken),
		errors.Is(err, cattle.ErrEmailTaken),
		errors.Is(err, cattle.ErrCowNotDeleted):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// renderError answers with the status mapped from err. Unmapped errors are
// logged and hidden behind a generic message.
func renderError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
			zap.String("request_id", c.GetString(ctxKeyRequestID)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
