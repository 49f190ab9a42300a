package observability

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestRequestLoggerUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.Use(RequestMetricsMiddleware("test"))
	r.POST("/listing", func(c *gin.Context) { c.String(http.StatusOK, "1, ") })

	for _, path := range []string{"/listing", "/nope"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("x"))
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"route":"/listing"`) || !strings.Contains(lines[0], `"level":"info"`) {
		t.Fatalf("unexpected matched log line: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"route":"unmatched"`) || !strings.Contains(lines[1], `"level":"warn"`) {
		t.Fatalf("unexpected unmatched log line: %s", lines[1])
	}
}
