package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/footcare/intake/internal/domain/intake"
)

func TestHandler_Overview(t *testing.T) {
	f := newFixture(time.Now())
	f.sessions.Upsert(context.Background(), &intake.Session{ID: "s1", Patient: intake.Patient{ID: "p1"}, CreatedAt: 100})

	h := NewHandler(f.svc)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Overview(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, key := range []string{"totalPatients", "totalTriages", "avgSatisfaction", "upcomingAppointments", "sessions", "conditionCounts"} {
		if _, ok := resp[key]; !ok {
			t.Errorf("missing %s in response", key)
		}
	}
	// Empty collections marshal as [] and {}, never null.
	if string(resp["upcomingAppointments"]) != "[]" {
		t.Errorf("expected [] for upcomingAppointments, got %s", resp["upcomingAppointments"])
	}
	if string(resp["conditionCounts"]) != "{}" {
		t.Errorf("expected {} for conditionCounts, got %s", resp["conditionCounts"])
	}
}
