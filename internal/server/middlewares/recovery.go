package middlewares

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/prodinfra/infrademo/internal/server/handlers/api"
)

// Recovery turns handler panics into a 500 JSON error and logs them on logger.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return gin.CustomRecoveryWithWriter(io.Discard, func(ctx *gin.Context, err any) {
		logger.ErrorContext(ctx.Request.Context(), "panic recovered",
			"error", err,
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"stack", string(debug.Stack()),
		)
		api.Abort(ctx, http.StatusInternalServerError, api.CodeInternalError, "internal server error")
	})
}
