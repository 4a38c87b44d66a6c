package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/insight"
)

func newInsightHandler(t *testing.T) *InsightHandler {
	reports := NewReportHandler(newTestStore(t))
	return NewInsightHandler(insight.Static{}, reports)
}

func TestInsightRoute(t *testing.T) {
	h := newInsightHandler(t)

	req := jsonRequest(t, http.MethodPost, "/api/insights/route", map[string]string{
		"origin": "Garagem Central", "destination": "CD Guarulhos",
	})
	w := httptest.NewRecorder()
	h.Route(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var result insight.Result
	decodeBody(t, w, &result)
	assert.Contains(t, result.Text, "CD Guarulhos")
}

func TestInsightRoute_RequiresEndpoints(t *testing.T) {
	h := newInsightHandler(t)

	req := jsonRequest(t, http.MethodPost, "/api/insights/route", map[string]string{"origin": "A"})
	w := httptest.NewRecorder()
	h.Route(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInsightOptimize(t *testing.T) {
	h := newInsightHandler(t)

	req := jsonRequest(t, http.MethodPost, "/api/insights/optimize", map[string]interface{}{
		"origin": "A", "destination": "D", "waypoints": []string{"B", "C"},
	})
	w := httptest.NewRecorder()
	h.Optimize(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var result insight.Result
	decodeBody(t, w, &result)
	assert.Contains(t, result.Text, "B, C, D")
}

func TestInsightFleet(t *testing.T) {
	h := newInsightHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/insights/fleet", nil)
	w := httptest.NewRecorder()
	h.Fleet(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp["text"])
}

func TestNavigationLink(t *testing.T) {
	h := newInsightHandler(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/navigation/link?origin=Garagem+Central&destination=Porto&city=Santos&waypoint=A&waypoint=B", nil)
	w := httptest.NewRecorder()
	h.NavigationLink(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Contains(t, resp["url"], "https://www.google.com/maps/dir/")
	assert.Contains(t, resp["url"], "travelmode=driving")
}

func TestNavigationLink_RequiresEndpoints(t *testing.T) {
	h := newInsightHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/navigation/link?origin=A", nil)
	w := httptest.NewRecorder()
	h.NavigationLink(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRodizioEndpoint(t *testing.T) {
	h := newInsightHandler(t)

	// 2026-08-24 is a Monday; plates ending 1 and 2 are restricted
	req := httptest.NewRequest(http.MethodGet, "/api/rodizio?plate=ABC-1231&date=2026-08-24", nil)
	w := httptest.NewRecorder()
	h.Rodizio(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	decodeBody(t, w, &resp)
	assert.Equal(t, true, resp["restricted"])
	assert.Equal(t, "Segunda-feira", resp["day_label"])

	req = httptest.NewRequest(http.MethodGet, "/api/rodizio?plate=ABC-1235&date=2026-08-24", nil)
	w = httptest.NewRecorder()
	h.Rodizio(w, req)
	decodeBody(t, w, &resp)
	assert.Equal(t, false, resp["restricted"])
}

func TestRodizioEndpoint_Validation(t *testing.T) {
	h := newInsightHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/rodizio", nil)
	w := httptest.NewRecorder()
	h.Rodizio(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/rodizio?plate=ABC-1234&date=not-a-date", nil)
	w = httptest.NewRecorder()
	h.Rodizio(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
