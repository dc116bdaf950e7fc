package middleware

import (
	"log/slog"
	"net/http"

	"zucit/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and answers with the JSON error envelope.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered",
			"request_id", RequestID(c),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		msg := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			msg = s
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewError(models.CodeInternalError, msg))
	})
}
