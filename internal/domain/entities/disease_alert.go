package entities

import "time"

// AlertLevel grades a disease alert
type AlertLevel string

const (
	AlertLevelHigh   AlertLevel = "high"
	AlertLevelMedium AlertLevel = "medium"
	AlertLevelLow    AlertLevel = "low"
)

// DiseaseAlert is listed by GET /disease/alerts
type DiseaseAlert struct {
	ID             string     `json:"id"`
	Village        string     `json:"village"`
	Disease        string     `json:"disease"`
	CasesReported  int        `json:"cases_reported"`
	AlertLevel     AlertLevel `json:"alert_level"`
	Description    string     `json:"description"`
	PreventionTips string     `json:"prevention_tips"`
	DateReported   *time.Time `json:"date_reported,omitempty"`
}

// DiseaseReport is the POST /disease/report payload
type DiseaseReport struct {
	Village string `json:"village"`
	Disease string `json:"disease"`
}
