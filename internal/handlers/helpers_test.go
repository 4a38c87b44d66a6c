package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/db"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/middleware"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	s, err := store.New(db.NewMemoryPersister())
	assert.NoError(t, err)
	return s
}

func jsonRequest(t *testing.T, method, path string, payload interface{}) *http.Request {
	var body bytes.Buffer
	if payload != nil {
		assert.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withClaims(req *http.Request, claims *models.Claims) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
