package middlewares

import (
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// two years, the minimum browsers accept for preload lists
const hstsMaxAge = 2 * 365 * 24 * time.Hour

// HSTS pins clients to https and redirects plain http requests.
// It only makes sense when the server terminates TLS itself; the
// remaining hardening headers come from SecurityHeaders.
func HSTS() gin.HandlerFunc {
	return secure.New(secure.Config{
		SSLRedirect:          true,
		STSSeconds:           int64(hstsMaxAge / time.Second),
		STSIncludeSubdomains: true,
		SSLProxyHeaders:      map[string]string{"X-Forwarded-Proto": "https"},
	})
}
