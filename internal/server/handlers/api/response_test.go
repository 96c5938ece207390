package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/missing", nil)

	Abort(c, http.StatusNotFound, CodeNotFound, "not found")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, c.Errors, 1)
	assert.Equal(t, "not found", c.Errors[0].Error())

	var body APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeNotFound, body.Code)
	assert.Equal(t, "not found", body.Message)
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: CodeRateLimited, Message: "rate limit exceeded"}
	assert.Equal(t, "api error: code=E_RATE_LIMITED, message=rate limit exceeded", err.Error())
}
