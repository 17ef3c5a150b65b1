package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/arovia/web/internal/adapters/preferences"
	"github.com/zatekoja/arovia/web/internal/application/navigation"
	"github.com/zatekoja/arovia/web/internal/application/sessions"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
)

type testEnv struct {
	handler  *ScreenHandler
	manager  *sessions.Manager
	session  *sessions.Session
	backend  *httptest.Server
	doctorsN int32
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{}

	env.backend = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/doctors":
			atomic.AddInt32(&env.doctorsN, 1)
			_, _ = w.Write([]byte(`[{"id":"d1","name":"Dr. Rajesh Kumar","specialization":"General Medicine","available":true,"consultation_fee":300}]`))
		case "/doctors/book":
			_, _ = w.Write([]byte(`{"id":"b1"}`))
		case "/medicines":
			_, _ = w.Write([]byte(`[{"id":"m1","name":"Paracetamol 500mg","price":25,"category":"Pain Relief","stock":10}]`))
		case "/emergency/contacts":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(env.backend.Close)

	prefs := preferences.NewMemoryStore()
	renderer, err := NewRenderer()
	require.NoError(t, err)

	env.manager = sessions.NewManager(navigation.DefaultRouter(), arovia.NewClient(env.backend.URL), prefs, sessions.Options{DefaultUserID: "user_123"})
	env.session = env.manager.Create()
	env.handler = NewScreenHandler(renderer, prefs)
	return env
}

func (e *testEnv) request(method, path string, form url.Values, asJSON bool) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if asJSON {
		req.Header.Set("Accept", "application/json")
	}
	return req.WithContext(sessions.NewContext(req.Context(), e.session))
}

func decodeScreen(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestScreenHandler_ShowRendersHTML(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.handler.Show(rec, env.request(http.MethodGet, "/doctors", nil, false))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Dr. Rajesh Kumar")
}

func TestScreenHandler_EveryGetIsAnActivation(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		env.handler.Show(rec, env.request(http.MethodGet, "/doctors", nil, true))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(&env.doctorsN))
}

func TestScreenHandler_ShowAllScreens(t *testing.T) {
	env := newTestEnv(t)

	for _, route := range navigation.DefaultRouter().Routes() {
		t.Run(route.Path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			env.handler.Show(rec, env.request(http.MethodGet, route.Path, nil, false))
			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestScreenHandler_FailedReadShowsToast(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.handler.Show(rec, env.request(http.MethodGet, "/emergency", nil, true))

	body := decodeScreen(t, rec)
	view := body["view"].(map[string]interface{})
	assert.Equal(t, "error", view["phase"])
	toasts := body["toasts"].([]interface{})
	require.Len(t, toasts, 1)
	assert.Equal(t, "Failed to load emergency contacts", toasts[0].(map[string]interface{})["text"])
}

func TestScreenHandler_BookFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.handler.SelectDoctor(rec, env.request(http.MethodPost, "/doctors/select", url.Values{"doctor_id": {"d1"}}, true))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	env.handler.BookDoctor(rec, env.request(http.MethodPost, "/doctors/book", url.Values{
		"patient_name":   {"Asha"},
		"patient_age":    {"abc"},
		"contact_number": {"98765"},
	}, true))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION", decodeScreen(t, rec)["error"].(map[string]interface{})["type"])

	rec = httptest.NewRecorder()
	env.handler.BookDoctor(rec, env.request(http.MethodPost, "/doctors/book", url.Values{
		"patient_name":   {"Asha"},
		"patient_age":    {"34"},
		"contact_number": {"98765"},
	}, true))
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeScreen(t, rec)["view"].(map[string]interface{})
	assert.Nil(t, view["selected"])
	assert.Equal(t, "", view["draft"].(map[string]interface{})["patient_name"])
	// Select activated the screen; booking reused it
	assert.Equal(t, int32(1), atomic.LoadInt32(&env.doctorsN))
}

func TestScreenHandler_AddToCartJSONBody(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/medicines/cart", strings.NewReader(`{"medicine_id":"m1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req = req.WithContext(sessions.NewContext(req.Context(), env.session))

	rec := httptest.NewRecorder()
	env.handler.AddToCart(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeScreen(t, rec)["view"].(map[string]interface{})
	items := view["cart"].(map[string]interface{})["items"].([]interface{})
	assert.Len(t, items, 1)
}

func TestScreenHandler_SelectLanguageRedirects(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.handler.SelectLanguage(rec, env.request(http.MethodPost, "/language", url.Values{"code": {"hi"}}, false))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http-equiv="refresh"`)
	assert.Contains(t, rec.Body.String(), "/dashboard")

	rec = httptest.NewRecorder()
	env.handler.Show(rec, env.request(http.MethodGet, "/dashboard", nil, true))
	assert.Equal(t, "hi", decodeScreen(t, rec)["language"])
}

func TestScreenHandler_UnknownPath(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.handler.Show(rec, env.request(http.MethodGet, "/nowhere", nil, true))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
