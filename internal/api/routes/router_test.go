package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/arovia/web/internal/adapters/preferences"
	"github.com/zatekoja/arovia/web/internal/api/handlers"
	"github.com/zatekoja/arovia/web/internal/application/navigation"
	"github.com/zatekoja/arovia/web/internal/application/sessions"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
)

func newTestHandler(t *testing.T, opts ...func(*Options)) http.Handler {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(backend.Close)

	prefs := preferences.NewMemoryStore()
	screens := navigation.DefaultRouter()
	manager := sessions.NewManager(screens, arovia.NewClient(backend.URL), prefs, sessions.Options{DefaultUserID: "user_123"})
	renderer, err := handlers.NewRenderer()
	require.NoError(t, err)

	options := Options{CookieName: "arovia_session", AllowedOrigins: []string{"*"}}
	for _, opt := range opts {
		opt(&options)
	}

	router := NewRouter(
		screens,
		handlers.NewScreenHandler(renderer, prefs),
		handlers.NewNotificationHandler(0),
		manager,
		nil,
		options,
	)
	return router.SetupRoutes()
}

func TestRouter_Health(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_HealthDegraded(t *testing.T) {
	handler := newTestHandler(t, func(o *Options) {
		o.HealthCheck = func(context.Context) error { return errors.New("redis down") }
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "DEGRADED", rec.Body.String())
}

func TestRouter_ScreensAndActions(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/dashboard", http.StatusOK},
		{http.MethodGet, "/doctors", http.StatusOK},
		{http.MethodGet, "/disease-radar", http.StatusOK},
		{http.MethodGet, "/notifications", http.StatusOK},
		{http.MethodGet, "/unknown", http.StatusNotFound},
		{http.MethodPost, "/emergency/sos", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_EveryActionRegistered(t *testing.T) {
	for _, action := range Actions {
		_, ok := navigation.DefaultRouter().Lookup(action.Screen)
		assert.True(t, ok, action.Pattern)
	}
}
