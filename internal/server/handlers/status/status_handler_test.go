package status

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodinfra/infrademo/internal/logging"
)

func newTestHandler(t *testing.T, opts ...Option) (*StatusHandler, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := logging.Named(logging.NewLineHandler(&buf, slog.LevelInfo), logging.AppLogger)
	return New(logger, opts...), &buf
}

func serve(handler gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	handler(c)
	return w
}

func decodeRoot(t *testing.T, w *httptest.ResponseRecorder) RootResponse {
	t.Helper()
	var body RootResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "raw=%s", w.Body.String())
	return body
}

func logLines(buf *bytes.Buffer) []string {
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestHealth(t *testing.T) {
	h, logs := newTestHandler(t)

	w := serve(h.Health, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`, w.Body.String())
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))

	lines := logLines(logs)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], " - app - INFO - Health check performed"), lines[0])
}

func TestRoot_Payload(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 30, 45, 123456000, time.UTC)
	h, logs := newTestHandler(t,
		WithClock(func() time.Time { return fixed }),
		WithGetenv(func(key string) string {
			if key == EnvironmentVar {
				return "prod"
			}
			return ""
		}),
	)

	w := serve(h.Root, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`{"status":"healthy","message":"Production Infrastructure Demo","timestamp":"2025-06-01T12:30:45.123456Z","environment":"prod"}`,
		w.Body.String(),
	)

	lines := logLines(logs)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], " - app - INFO - Home endpoint accessed"), lines[0])
}

func TestRoot_Environment(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
		want  string
	}{
		{
			name: "unset",
			setup: func(t *testing.T) {
				t.Setenv(EnvironmentVar, "")
				require.NoError(t, os.Unsetenv(EnvironmentVar))
			},
			want: UnknownEnvironment,
		},
		{
			name:  "empty",
			setup: func(t *testing.T) { t.Setenv(EnvironmentVar, "") },
			want:  UnknownEnvironment,
		},
		{
			name:  "staging",
			setup: func(t *testing.T) { t.Setenv(EnvironmentVar, "staging") },
			want:  "staging",
		},
		{
			name:  "prod",
			setup: func(t *testing.T) { t.Setenv(EnvironmentVar, "prod") },
			want:  "prod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			h, _ := newTestHandler(t)

			body := decodeRoot(t, serve(h.Root, "/"))

			assert.Equal(t, StatusHealthy, body.Status)
			assert.Equal(t, RootMessage, body.Message)
			assert.Equal(t, tt.want, body.Environment)
		})
	}
}

func TestRoot_EnvironmentReadPerRequest(t *testing.T) {
	t.Setenv(EnvironmentVar, "staging")
	h, _ := newTestHandler(t)

	first := decodeRoot(t, serve(h.Root, "/"))
	t.Setenv(EnvironmentVar, "prod")
	second := decodeRoot(t, serve(h.Root, "/"))

	assert.Equal(t, "staging", first.Environment)
	assert.Equal(t, "prod", second.Environment)
}

func TestRoot_TimestampIsCurrentAndNonDecreasing(t *testing.T) {
	h, _ := newTestHandler(t)

	start := time.Now()
	first := decodeRoot(t, serve(h.Root, "/"))
	second := decodeRoot(t, serve(h.Root, "/"))
	end := time.Now()

	t1, err := time.Parse(time.RFC3339Nano, first.Timestamp)
	require.NoError(t, err, "timestamp=%q", first.Timestamp)
	t2, err := time.Parse(time.RFC3339Nano, second.Timestamp)
	require.NoError(t, err, "timestamp=%q", second.Timestamp)

	assert.False(t, t2.Before(t1), "t1=%v t2=%v", t1, t2)
	assert.False(t, t1.Before(start.Truncate(time.Microsecond)), "t1=%v start=%v", t1, start)
	assert.False(t, t2.After(end), "t2=%v end=%v", t2, end)
}

func TestNew_DefaultLogger(t *testing.T) {
	h := New(nil)
	assert.NotNil(t, h.logger)
}
