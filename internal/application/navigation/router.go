package navigation

import (
	"sort"

	"github.com/zatekoja/arovia/web/internal/application/screens"
)

// Factory builds a fresh screen for one activation
type Factory func(deps screens.Deps) screens.Screen

// Route binds a path to a screen factory
type Route struct {
	Path    string
	Title   string
	Factory Factory
}

// Router is the static path -> screen table
type Router struct {
	routes map[string]Route
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{routes: make(map[string]Route)}
}

// Register adds a route, replacing any previous one for the same path
func (r *Router) Register(path, title string, factory Factory) {
	r.routes[path] = Route{Path: path, Title: title, Factory: factory}
}

// Lookup returns the route for path
func (r *Router) Lookup(path string) (Route, bool) {
	route, ok := r.routes[path]
	return route, ok
}

// Routes returns every route sorted by path
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.routes))
	for _, route := range r.routes {
		out = append(out, route)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// DefaultRouter registers every Arovia screen
func DefaultRouter() *Router {
	r := NewRouter()
	r.Register(screens.PathLanguage, "Choose Language", func(d screens.Deps) screens.Screen { return screens.NewLanguageSelection(d) })
	r.Register(screens.PathDashboard, "Dashboard", func(d screens.Deps) screens.Screen { return screens.NewDashboard(d) })
	r.Register(screens.PathDoctors, "Book a Doctor", func(d screens.Deps) screens.Screen { return screens.NewDoctorBooking(d) })
	r.Register(screens.PathMedicines, "Buy Medicines", func(d screens.Deps) screens.Screen { return screens.NewMedicineStore(d) })
	r.Register(screens.PathDadiChat, "Dadi Chatbot", func(d screens.Deps) screens.Screen { return screens.NewDadiChat(d) })
	r.Register(screens.PathEmergency, "Emergency Help", func(d screens.Deps) screens.Screen { return screens.NewEmergencyHelp(d) })
	r.Register(screens.PathHealthPlanner, "Health Planner", func(d screens.Deps) screens.Screen { return screens.NewHealthPlanner(d) })
	r.Register(screens.PathDiseaseRadar, "Disease Radar", func(d screens.Deps) screens.Screen { return screens.NewDiseaseRadar(d) })
	r.Register(screens.PathSymptomChecker, "Symptom Checker", func(d screens.Deps) screens.Screen { return screens.NewSymptomChecker(d) })
	r.Register(screens.PathReminders, "Health Reminders", func(d screens.Deps) screens.Screen { return screens.NewReminders(d) })
	return r
}
