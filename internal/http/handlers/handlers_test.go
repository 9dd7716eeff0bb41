// README: Shared test doubles and helpers for handler tests.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"parkfee/internal/modules/area"
	"parkfee/internal/modules/currency"
	"parkfee/internal/types"
)

// memRepo is an in-memory area.Repository for handler tests.
type memRepo struct {
	areas map[types.ID]area.Area
}

func newMemRepo(seed ...area.Area) *memRepo {
	m := &memRepo{areas: make(map[types.ID]area.Area)}
	for _, a := range seed {
		m.areas[a.ID] = a
	}
	return m
}

func (m *memRepo) Insert(_ context.Context, a *area.Area) error {
	m.areas[a.ID] = *a
	return nil
}

func (m *memRepo) List(_ context.Context) ([]area.Area, error) {
	out := make([]area.Area, 0, len(m.areas))
	for _, a := range m.areas {
		out = append(out, a)
	}
	return out, nil
}

func (m *memRepo) Get(_ context.Context, id types.ID) (*area.Area, error) {
	a, ok := m.areas[id]
	if !ok {
		return nil, area.ErrNotFound
	}
	return &a, nil
}

func (m *memRepo) Update(_ context.Context, a area.Area) error {
	if _, ok := m.areas[a.ID]; !ok {
		return area.ErrNotFound
	}
	m.areas[a.ID] = a
	return nil
}

func (m *memRepo) Delete(_ context.Context, id types.ID) error {
	if _, ok := m.areas[id]; !ok {
		return area.ErrNotFound
	}
	delete(m.areas, id)
	return nil
}

// stubFetcher is a canned currency.Fetcher.
type stubFetcher struct {
	rates currency.Rates
	err   error
}

func (f *stubFetcher) FetchRates(_ context.Context, _ string, _ []string) (currency.Rates, error) {
	if f.err != nil {
		return currency.Rates{}, f.err
	}
	return f.rates, nil
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
