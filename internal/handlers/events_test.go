package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-marketplace/internal/catalog"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestEventHandler(t *testing.T) *EventHandler {
	t.Helper()
	cat, err := catalog.New(catalog.SeedEvents(), testLogger())
	require.NoError(t, err)
	return NewEventHandler(cat)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func TestListEvents(t *testing.T) {
	h := newTestEventHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/events", nil)
	h.ListEvents(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	events, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, events, 6)

	first, ok := events[0].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, first, "min_price")
	assert.Contains(t, first, "availability_percent")
}

func TestListEventsFiltered(t *testing.T) {
	h := newTestEventHandler(t)

	tests := []struct {
		name  string
		url   string
		count int
	}{
		{name: "search by title", url: "/events?q=summit", count: 1},
		{name: "search matching descriptions", url: "/events?q=wine", count: 2},
		{name: "filter by category", url: "/events?category=Technology", count: 1},
		{name: "no matches", url: "/events?q=nonexistent", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", tt.url, nil)
			h.ListEvents(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			env := decodeEnvelope(t, w)
			events, ok := env.Data.([]interface{})
			require.True(t, ok)
			assert.Len(t, events, tt.count)
		})
	}
}

func TestGetEvent(t *testing.T) {
	h := newTestEventHandler(t)

	r := chi.NewRouter()
	r.Get("/events/{id}", h.GetEvent)

	t.Run("existing event", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/events/1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Success)

		event, ok := env.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "1", event["id"])
	})

	t.Run("unknown event", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/events/999", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestListCategories(t *testing.T) {
	h := newTestEventHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/events/categories", nil)
	h.ListCategories(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	categories, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, categories)
}

func TestFeaturedEvents(t *testing.T) {
	h := newTestEventHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/events/featured", nil)
	h.FeaturedEvents(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	events, ok := env.Data.([]interface{})
	require.True(t, ok)
	for _, v := range events {
		event, ok := v.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, event["featured"])
	}
}
