package entities

// ReminderType classifies a health reminder
type ReminderType string

const (
	ReminderMedicine    ReminderType = "medicine"
	ReminderVaccination ReminderType = "vaccination"
	ReminderCheckup     ReminderType = "checkup"
)

// HealthReminder is listed by GET /reminders/{user_id} and created by POST /reminders
type HealthReminder struct {
	ID           string       `json:"id,omitempty"`
	UserID       string       `json:"user_id"`
	ReminderType ReminderType `json:"reminder_type"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Time         string       `json:"time"`
	Frequency    string       `json:"frequency"`
	Active       bool         `json:"active"`
}

// ReminderForm is the reminder form as typed by the user
type ReminderForm struct {
	ReminderType string `json:"reminder_type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Time         string `json:"time"`
	Frequency    string `json:"frequency"`
}
