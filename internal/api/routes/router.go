package routes

import (
	"context"
	"net/http"

	"github.com/zatekoja/arovia/web/internal/api/handlers"
	"github.com/zatekoja/arovia/web/internal/api/middleware"
	"github.com/zatekoja/arovia/web/internal/application/navigation"
	"github.com/zatekoja/arovia/web/internal/application/sessions"
	"github.com/zatekoja/arovia/web/internal/infrastructure/observability"
)

// Action is a POST endpoint acting on the active screen
type Action struct {
	Pattern string
	Screen  string
}

// Actions lists every screen action, in registration order
var Actions = []Action{
	{Pattern: "POST /language", Screen: "/"},
	{Pattern: "POST /doctors/select", Screen: "/doctors"},
	{Pattern: "POST /doctors/book", Screen: "/doctors"},
	{Pattern: "POST /medicines/cart", Screen: "/medicines"},
	{Pattern: "POST /medicines/filter", Screen: "/medicines"},
	{Pattern: "POST /dadi-chat/messages", Screen: "/dadi-chat"},
	{Pattern: "POST /emergency/sos", Screen: "/emergency"},
	{Pattern: "POST /health-planner/generate", Screen: "/health-planner"},
	{Pattern: "POST /disease-radar/reports", Screen: "/disease-radar"},
	{Pattern: "POST /symptom-checker/analyze", Screen: "/symptom-checker"},
	{Pattern: "POST /reminders/create", Screen: "/reminders"},
}

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	screens             *navigation.Router
	screenHandler       *handlers.ScreenHandler
	notificationHandler *handlers.NotificationHandler

	sessions       *sessions.Manager
	cookieName     string
	secureCookie   bool
	allowedOrigins []string
	healthCheck    func(context.Context) error
	metrics        *observability.Metrics
}

// Options configures the outer middleware
type Options struct {
	CookieName     string
	SecureCookie   bool
	AllowedOrigins []string
	// HealthCheck reports the state of backing stores; nil means none
	HealthCheck func(context.Context) error
}

// NewRouter creates a new router
func NewRouter(
	screens *navigation.Router,
	screenHandler *handlers.ScreenHandler,
	notificationHandler *handlers.NotificationHandler,
	sessionManager *sessions.Manager,
	metrics *observability.Metrics,
	opts Options,
) *Router {
	return &Router{
		mux:                 http.NewServeMux(),
		screens:             screens,
		screenHandler:       screenHandler,
		notificationHandler: notificationHandler,
		sessions:            sessionManager,
		cookieName:          opts.CookieName,
		secureCookie:        opts.SecureCookie,
		allowedOrigins:      opts.AllowedOrigins,
		healthCheck:         opts.HealthCheck,
		metrics:             metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		if r.healthCheck != nil {
			if err := r.healthCheck(req.Context()); err != nil {
				observability.LoggerFromContext(req.Context()).Warn().Err(err).Msg("health check failed")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("DEGRADED"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Screens: every GET is a fresh activation
	for _, route := range r.screens.Routes() {
		pattern := "GET " + route.Path
		if route.Path == "/" {
			pattern = "GET /{$}"
		}
		r.mux.HandleFunc(pattern, r.screenHandler.Show)
	}

	// Screen actions
	actions := map[string]http.HandlerFunc{
		"POST /language":                r.screenHandler.SelectLanguage,
		"POST /doctors/select":          r.screenHandler.SelectDoctor,
		"POST /doctors/book":            r.screenHandler.BookDoctor,
		"POST /medicines/cart":          r.screenHandler.AddToCart,
		"POST /medicines/filter":        r.screenHandler.FilterMedicines,
		"POST /dadi-chat/messages":      r.screenHandler.SendChat,
		"POST /emergency/sos":           r.screenHandler.TriggerSOS,
		"POST /health-planner/generate": r.screenHandler.GenerateHealthPlan,
		"POST /disease-radar/reports":   r.screenHandler.ReportDisease,
		"POST /symptom-checker/analyze": r.screenHandler.AnalyzeSymptoms,
		"POST /reminders/create":        r.screenHandler.CreateReminder,
	}
	for _, action := range Actions {
		r.mux.HandleFunc(action.Pattern, actions[action.Pattern])
	}

	// Notifications
	r.mux.HandleFunc("GET /notifications", r.notificationHandler.ListActive)
	r.mux.HandleFunc("GET /notifications/stream", r.notificationHandler.Stream)
	r.mux.HandleFunc("POST /notifications/{id}/dismiss", r.notificationHandler.Dismiss)

	r.mux.HandleFunc("/", r.screenHandler.NotFound)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.SessionMiddleware(r.sessions, r.cookieName, r.secureCookie)(handler)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set on every response
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
