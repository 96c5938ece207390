package middlewares

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// SecurityHeaders sets the response hardening headers that apply to plain HTTP too.
func SecurityHeaders() gin.HandlerFunc {
	return secure.New(secure.Config{
		IsDevelopment:      false,
		SSLRedirect:        false,
		FrameDeny:          true,
		ContentTypeNosniff: true,
		ReferrerPolicy:     "no-referrer",
	})
}
