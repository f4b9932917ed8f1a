package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipeai/backend/internal/apperrors"
)

// RespondError aborts the request with the JSON envelope for err. Errors that
// are not AppErrors are reported as internal faults.
func RespondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	if appErr.Cause != nil {
		_ = c.Error(appErr)
	}
	c.AbortWithStatusJSON(appErr.StatusCode(), apperrors.ToErrorResponse(appErr, GetRequestID(c)))
}

// Recovery turns a panic into a generic 500 response
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.Any("error", rec),
					zap.String("stack", string(debug.Stack())),
				)
				RespondError(c, apperrors.NewInternalError(fmt.Errorf("panic: %v", rec)))
			}
		}()

		c.Next()
	}
}
