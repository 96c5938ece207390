package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// AbortWithError records err on the context and writes the JSON error payload.
func AbortWithError(ctx *gin.Context, status int, code string, err error) {
	ctx.Abort()
	ctx.Error(err) //nolint:errcheck
	ctx.PureJSON(status, APIError{
		Code:    code,
		Message: err.Error(),
	})
}

// Abort is AbortWithError for a plain message.
func Abort(ctx *gin.Context, status int, code, message string) {
	AbortWithError(ctx, status, code, errors.New(message))
}
