package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddlewareCountsRoutes(t *testing.T) {
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	if got := testutil.ToFloat64(m.requests.WithLabelValues("/", "200")); got != 3 {
		t.Fatalf("requests{/,200} = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "404")); got != 1 {
		t.Fatalf("requests{unmatched,404} = %v, want 1", got)
	}
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.SessionOpened()
	m.SessionOpened()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "portfolio_ssh_sessions_total 2") {
		t.Fatalf("ssh session counter missing from exposition:\n%s", rec.Body.String())
	}
}
