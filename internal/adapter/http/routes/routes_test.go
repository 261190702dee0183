package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mecanica_workorders/internal/adapter/http/handlers"
	"mecanica_workorders/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAddWorkOrderRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, handlers.NewWorkOrderHandler(mocks.NewMockIWorkOrderUseCase(ctrl)))

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /v1/ping",
		"POST /v1/work-orders",
		"GET /v1/work-orders/:id",
		"DELETE /v1/work-orders/:id",
		"PATCH /v1/work-orders/:id/status",
		"POST /v1/work-orders/:id/approve",
		"PATCH /v1/work-orders/:id/estimated-cost",
		"POST /v1/work-orders/:id/services",
		"POST /v1/work-orders/:id/services/:service_id/complete",
		"PATCH /v1/work-orders/:id/parts/:part_id",
		"POST /v1/work-orders/:id/parts/:part_id/apply",
	}
	for _, e := range expected {
		if !registered[e] {
			t.Fatalf("route %q not registered", e)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestGetenvDuration(t *testing.T) {
	t.Setenv("NOTIFICATION_TIMEOUT", "")
	if got := getenvDuration("NOTIFICATION_TIMEOUT", 5*time.Second); got != 5*time.Second {
		t.Fatalf("expected default, got %s", got)
	}

	t.Setenv("NOTIFICATION_TIMEOUT", "750ms")
	if got := getenvDuration("NOTIFICATION_TIMEOUT", 5*time.Second); got != 750*time.Millisecond {
		t.Fatalf("expected 750ms, got %s", got)
	}

	t.Setenv("NOTIFICATION_TIMEOUT", "soon")
	if got := getenvDuration("NOTIFICATION_TIMEOUT", 5*time.Second); got != 5*time.Second {
		t.Fatalf("expected default for invalid value, got %s", got)
	}
}
