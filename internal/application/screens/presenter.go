package screens

import (
	stderrors "errors"

	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

const genericFailure = "Something went wrong"

// Presenter maps failures to the text shown in a toast. Every error kind of
// a given operation currently shares one text; the kind is kept so the
// mapping can diverge later without touching the screens.
type Presenter struct {
	failures map[string]string
}

// NewPresenter returns the default operation texts
func NewPresenter() *Presenter {
	return &Presenter{
		failures: map[string]string{
			arovia.OpListDoctors:             "Failed to load doctors",
			arovia.OpBookDoctor:              "Failed to book appointment",
			arovia.OpListMedicines:           "Failed to load medicines",
			arovia.OpListMedicinesByCategory: "Failed to load medicines",
			arovia.OpSendChat:                "Failed to send message",
			arovia.OpListEmergencyContacts:   "Failed to load emergency contacts",
			arovia.OpTriggerSOS:              "Failed to trigger SOS",
			arovia.OpGenerateHealthPlan:      "Failed to generate health plan",
			arovia.OpAnalyzeSymptoms:         "Failed to analyze symptoms",
			arovia.OpListDiseaseAlerts:       "Failed to load disease alerts",
			arovia.OpReportDisease:           "Failed to report disease",
			arovia.OpListReminders:           "Failed to load reminders",
			arovia.OpCreateReminder:          "Failed to create reminder",
		},
	}
}

// Text returns the user-facing text for err raised by operation op
func (p *Presenter) Text(op string, err error) string {
	if apperrors.TypeOf(err) == apperrors.ErrorTypeValidation {
		var appErr *apperrors.AppError
		if stderrors.As(err, &appErr) {
			return appErr.Message
		}
	}
	if text, ok := p.failures[op]; ok {
		return text
	}
	return genericFailure
}
