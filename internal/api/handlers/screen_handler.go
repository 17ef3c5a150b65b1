package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"github.com/zatekoja/arovia/web/internal/application/screens"
	"github.com/zatekoja/arovia/web/internal/application/sessions"
	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/domain/providers"
	"github.com/zatekoja/arovia/web/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

// ScreenHandler serves screens and the actions posted from them. A GET of a
// screen path is a new activation; a POST acts on the active screen.
type ScreenHandler struct {
	renderer *Renderer
	prefs    providers.PreferenceStore
}

// NewScreenHandler creates a new screen handler
func NewScreenHandler(renderer *Renderer, prefs providers.PreferenceStore) *ScreenHandler {
	return &ScreenHandler{
		renderer: renderer,
		prefs:    prefs,
	}
}

type errorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type screenResponse struct {
	Path     string            `json:"path"`
	Title    string            `json:"title"`
	Language string            `json:"language,omitempty"`
	View     interface{}       `json:"view"`
	Toasts   []entities.Toast  `json:"toasts"`
	Redirect *screens.Redirect `json:"redirect,omitempty"`
	Error    *errorBody        `json:"error,omitempty"`
}

// Show handles GET of any screen path
func (h *ScreenHandler) Show(w http.ResponseWriter, r *http.Request) {
	session, ok := sessions.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "no session")
		return
	}

	screen, err := session.Navigator.Navigate(r.Context(), r.URL.Path)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.render(w, r, session, screen, nil, nil)
}

// NotFound handles paths with no screen
func (h *ScreenHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "no screen at "+r.URL.Path)
}

// SelectLanguage handles POST /language
func (h *ScreenHandler) SelectLanguage(w http.ResponseWriter, r *http.Request) {
	session, screen, form, err := activeScreen[*screens.LanguageSelection](w, r, screens.PathLanguage)
	if session == nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	var redirect *screens.Redirect
	if err == nil {
		redirect, err = screen.Select(r.Context(), form.Get("code"))
	}
	h.render(w, r, session, screen, redirect, err)
}

// SelectDoctor handles POST /doctors/select
func (h *ScreenHandler) SelectDoctor(w http.ResponseWriter, r *http.Request) {
	session, screen, form, err := activeScreen[*screens.DoctorBooking](w, r, screens.PathDoctors)
	if session == nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	if err == nil {
		if doctorID := form.Get("doctor_id"); doctorID == "" {
			screen.ClearSelection()
		} else {
			err = screen.Select(r.Context(), doctorID)
		}
	}
	h.render(w, r, session, screen, nil, err)
}

// BookDoctor handles POST /doctors/book
func (h *ScreenHandler) BookDoctor(w http.ResponseWriter, r *http.Request) {
	session, screen, form, err := activeScreen[*screens.DoctorBooking](w, r, screens.PathDoctors)
	if session == nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	if err == nil {
		err = screen.Book(r.Context(), entities.BookingDraft{
			PatientName:   form.Get("patient_name"),
			PatientAge:    form.Get("patient_age"),
			Symptoms:      form.Get("symptoms"),
			ContactNumber: form.Get("contact_number"),
			PreferredTime: form.Get("preferred_time"),
		})
	}
	h.render(w, r, session, screen, nil, err)
}

// AddToCart handles POST /medicines/cart
func (h *ScreenHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	session, screen, form, err := activeScreen[*screens.MedicineStore](w, r, screens.PathMedicines)
	if session == nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	if err == nil {
		err = screen.AddToCart(r.Context(), form.Get("medicine_id"))
	}
	h.render(w, r, session, screen, nil, err)
}

// FilterMedicines handles POST /medicines/filter
func (h *ScreenHandler) FilterMedicines(w http.ResponseWriter, r *http.Request) {
	session, screen, form, err := activeScreen[*screens.MedicineStore](w, r, screens.PathMedicines)
	if session == nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	if err == nil {
		err = screen.FilterCategory(r.Context(), form.Get("category"))
	}
	h.render(w, r, session, screen, nil, err)
}

// SendChat handles POST /dadi-chat/messages
func (h *ScreenHandler) SendChat(w http.ResponseWriter, r *http.Request) {
	session, screen, form, err := activeScreen[*screens.DadiChat](w, r, screens.PathDadiChat)
	if session == nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	if err == nil {
		err = screen.Send(r.Context(), form.Get("message"))
	}
	h.render(w, r, session, screen, nil, err)
}

// TriggerSOS handles POST /emergency/sos
func (h *ScreenHandler) TriggerSOS(w http.ResponseWriter, r *http.Request) {
	session, screen, _, err := activeScreen[*screens.EmergencyHelp](w, r, screens.PathEmergency)
	if session == nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	if err == nil {
		_, err = screen.TriggerSOS(r.Context())
	}
	h.render(w, r, session, screen, nil, err)
}

// GenerateHealthPlan handles POST /health-planner/generate
func (h *ScreenHandler) GenerateHealthPlan(w http.ResponseWriter, r *http.Request) {
	session, screen, form, err := activeScreen[*screens.HealthPlanner](w, r, screens.PathHealthPlanner)
	if session == nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	if err == nil {
		err = screen.Generate(r.Context(), entities.HealthPlanForm{
			Age:        form.Get("age"),
			Symptoms:   form.Get("symptoms"),
			Conditions: form.Get("conditions"),
		})
	}
	h.render(w, r, session, screen, nil, err)
}

// ReportDisease handles POST /disease-radar/reports
func (h *ScreenHandler) ReportDisease(w http.ResponseWriter, r *http.Request) {
	session, screen, form, err := activeScreen[*screens.DiseaseRadar](w, r, screens.PathDiseaseRadar)
	if session == nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	if err == nil {
		err = screen.Report(r.Context(), form.Get("village"), form.Get("disease"))
	}
	h.render(w, r, session, screen, nil, err)
}

// AnalyzeSymptoms handles POST /symptom-checker/analyze
func (h *ScreenHandler) AnalyzeSymptoms(w http.ResponseWriter, r *http.Request) {
	session, screen, form, err := activeScreen[*screens.SymptomChecker](w, r, screens.PathSymptomChecker)
	if session == nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	if err == nil {
		err = screen.Analyze(r.Context(), entities.SymptomForm{
			Symptoms: form.Get("symptoms"),
			Age:      form.Get("age"),
		})
	}
	h.render(w, r, session, screen, nil, err)
}

// CreateReminder handles POST /reminders/create
func (h *ScreenHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	session, screen, form, err := activeScreen[*screens.Reminders](w, r, screens.PathReminders)
	if session == nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	if err == nil {
		err = screen.Create(r.Context(), entities.ReminderForm{
			ReminderType: form.Get("reminder_type"),
			Title:        form.Get("title"),
			Description:  form.Get("description"),
			Time:         form.Get("time"),
			Frequency:    form.Get("frequency"),
		})
	}
	h.render(w, r, session, screen, nil, err)
}

// activeScreen resolves the session's screen at path, activating it first
// when the session is elsewhere, and parses the posted form. A nil session
// means nothing can be rendered.
func activeScreen[T screens.Screen](w http.ResponseWriter, r *http.Request, path string) (*sessions.Session, T, url.Values, error) {
	var zero T

	session, ok := sessions.FromContext(r.Context())
	if !ok {
		return nil, zero, nil, fmt.Errorf("%w: no session", errInternal)
	}

	screen, err := session.Navigator.Current(r.Context(), path)
	if err != nil {
		return nil, zero, nil, err
	}
	typed, ok := screen.(T)
	if !ok {
		return nil, zero, nil, fmt.Errorf("%w: screen at %s is %T", errInternal, path, screen)
	}

	form, err := formValues(w, r)
	return session, typed, form, err
}

func (h *ScreenHandler) render(w http.ResponseWriter, r *http.Request, session *sessions.Session, screen screens.Screen, redirect *screens.Redirect, actionErr error) {
	ctx := r.Context()
	language, _ := h.prefs.Get(ctx, session.ID, entities.LanguagePreferenceKey)

	if wantsJSON(r) {
		resp := screenResponse{
			Path:     screen.Path(),
			Title:    screen.Title(),
			Language: language,
			View:     screen.View(),
			Toasts:   session.Notifications.Active(),
			Redirect: redirect,
		}
		if actionErr != nil {
			resp.Error = &errorBody{Type: string(apperrors.TypeOf(actionErr)), Message: actionErr.Error()}
		}
		respondWithJSON(w, statusFor(actionErr), resp)
		return
	}

	// Buffer so a template failure can still produce a clean 500
	var buf bytes.Buffer
	err := h.renderer.Render(&buf, Page{
		Title:    screen.Title(),
		Path:     screen.Path(),
		Language: language,
		View:     screen.View(),
		Toasts:   session.Notifications.Active(),
		Redirect: redirect,
	})
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Str("path", screen.Path()).Msg("failed to render screen")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
