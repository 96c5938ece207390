package status

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	logger *slog.Logger
	now    func() time.Time
	getenv func(string) string
}

type Option func(*StatusHandler)

// WithClock overrides the clock used for the root timestamp.
func WithClock(now func() time.Time) Option {
	return func(h *StatusHandler) {
		h.now = now
	}
}

// WithGetenv overrides the environment lookup.
func WithGetenv(getenv func(string) string) Option {
	return func(h *StatusHandler) {
		h.getenv = getenv
	}
}

func New(logger *slog.Logger, opts ...Option) *StatusHandler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &StatusHandler{
		logger: logger,
		now:    time.Now,
		getenv: os.Getenv,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Root reports service metadata. ENVIRONMENT is looked up on every request.
func (h *StatusHandler) Root(ctx *gin.Context) {
	h.logger.InfoContext(ctx.Request.Context(), "Home endpoint accessed")

	ctx.JSON(http.StatusOK, RootResponse{
		Status:      StatusHealthy,
		Message:     RootMessage,
		Timestamp:   h.now().Format(TimestampFormat),
		Environment: h.environment(),
	})
}

// Health is the liveness check.
func (h *StatusHandler) Health(ctx *gin.Context) {
	h.logger.InfoContext(ctx.Request.Context(), "Health check performed")

	ctx.JSON(http.StatusOK, HealthResponse{
		Status: StatusOK,
	})
}

func (h *StatusHandler) environment() string {
	if env := h.getenv(EnvironmentVar); env != "" {
		return env
	}
	return UnknownEnvironment
}
