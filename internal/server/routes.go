package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prodinfra/infrademo/internal/server/handlers/api"
	"github.com/prodinfra/infrademo/internal/server/handlers/status"
	"github.com/prodinfra/infrademo/internal/server/middlewares"
)

// SetupRoutes builds the http handler. appLogger receives the per-request
// handler lines; access and panic logs go to slog.Default().
func SetupRoutes(config *Config, appLogger *slog.Logger) (http.Handler, error) {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.RedirectTrailingSlash = false

	statusH := status.New(appLogger)

	r.Use(middlewares.Logger(slog.Default()))
	r.Use(middlewares.Recovery(slog.Default()))
	r.Use(middlewares.SecurityHeaders())
	if config.HTTP.TLSEnabled() {
		r.Use(middlewares.HSTS())
	}
	r.Use(middlewares.CORS())
	if config.HTTP.RateLimit != "" {
		limiter, err := middlewares.RateLimiter(config.HTTP.RateLimit)
		if err != nil {
			return nil, err
		}
		r.Use(limiter)
	}
	r.Use(middlewares.GZIP())

	r.GET("/", statusH.Root)
	r.GET("/health", statusH.Health)

	r.NoRoute(func(c *gin.Context) {
		api.Abort(c, http.StatusNotFound, api.CodeNotFound, "not found")
	})

	r.NoMethod(func(c *gin.Context) {
		api.Abort(c, http.StatusMethodNotAllowed, api.CodeMethodNotAllowed, "method not allowed")
	})

	return r.Handler(), nil
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
