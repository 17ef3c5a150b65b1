package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/zatekoja/arovia/web/internal/application/screens"
	"github.com/zatekoja/arovia/web/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is everything a screen template renders
type Page struct {
	Title    string
	Path     string
	Language string
	View     interface{}
	Toasts   []entities.Toast
	Redirect *screens.Redirect
}

var screenTemplates = map[string]string{
	screens.PathLanguage:       "language",
	screens.PathDashboard:      "dashboard",
	screens.PathDoctors:        "doctors",
	screens.PathMedicines:      "medicines",
	screens.PathDadiChat:       "chat",
	screens.PathEmergency:      "emergency",
	screens.PathHealthPlanner:  "planner",
	screens.PathDiseaseRadar:   "radar",
	screens.PathSymptomChecker: "symptoms",
	screens.PathReminders:      "reminders",
}

// Renderer executes the embedded screen templates
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("arovia").Funcs(template.FuncMap{
		"rupees": func(v float64) string { return fmt.Sprintf("₹%.0f", v) },
		"deref": func(v *float64) float64 {
			if v == nil {
				return 0
			}
			return *v
		},
		"seconds": func(d time.Duration) int { return int(d.Round(time.Second) / time.Second) },
		"date": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("02 Jan 2006")
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render writes page using the template registered for its path
func (r *Renderer) Render(w io.Writer, page Page) error {
	name, ok := screenTemplates[page.Path]
	if !ok {
		return fmt.Errorf("no template for %s", page.Path)
	}
	return r.templates.ExecuteTemplate(w, name, page)
}
