package screens

import (
	"context"
	"strings"
	"sync"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

const defaultReminderFrequency = "daily"

// RemindersView is the reminders screen's state
type RemindersView struct {
	Phase     Phase                     `json:"phase"`
	Reminders []entities.HealthReminder `json:"reminders"`
	Form      entities.ReminderForm     `json:"form"`
	Creating  ActionState               `json:"creating"`
}

// Reminders lists the user's health reminders and creates new ones
type Reminders struct {
	base

	reminders Collection[entities.HealthReminder]
	creating  Action

	mu   sync.RWMutex
	form entities.ReminderForm
}

func NewReminders(deps Deps) *Reminders {
	return &Reminders{base: newBase(deps)}
}

func (s *Reminders) Path() string  { return PathReminders }
func (s *Reminders) Title() string { return "Health Reminders" }

func (s *Reminders) Activate(ctx context.Context) {
	load(ctx, &s.base, &s.reminders, arovia.OpListReminders, func(ctx context.Context) ([]entities.HealthReminder, error) {
		return s.deps.API.ListReminders(ctx, s.deps.UserID)
	})
}

// Create stores a reminder and appends the server's copy to the list
func (s *Reminders) Create(ctx context.Context, form entities.ReminderForm) error {
	s.mu.Lock()
	s.form = form
	s.mu.Unlock()

	if blank(form.Title) || blank(form.Time) {
		return s.reject(ctx, "Please enter a title and time")
	}
	kind := entities.ReminderType(strings.TrimSpace(form.ReminderType))
	switch kind {
	case "":
		kind = entities.ReminderMedicine
	case entities.ReminderMedicine, entities.ReminderVaccination, entities.ReminderCheckup:
	default:
		return s.reject(ctx, "Please choose a reminder type")
	}
	frequency := strings.TrimSpace(form.Frequency)
	if frequency == "" {
		frequency = defaultReminderFrequency
	}

	if !s.creating.Begin() {
		return ErrBusy
	}

	reqCtx, done := s.activation.Bind(ctx)
	defer done()

	created, err := s.deps.API.CreateReminder(reqCtx, entities.HealthReminder{
		UserID:       s.deps.UserID,
		ReminderType: kind,
		Title:        strings.TrimSpace(form.Title),
		Description:  form.Description,
		Time:         strings.TrimSpace(form.Time),
		Frequency:    frequency,
		Active:       true,
	})
	if !s.Live() {
		s.creating.Abandon()
		return apperrors.NewCanceledError("screen left before reminder was created", err)
	}
	s.creating.Settle(err)
	if err != nil {
		s.fail(ctx, arovia.OpCreateReminder, err)
		return err
	}

	s.reminders.append(*created)

	s.mu.Lock()
	s.form = entities.ReminderForm{}
	s.mu.Unlock()

	s.succeed(ctx, "Reminder created successfully!")
	return nil
}

func (s *Reminders) View() interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return RemindersView{
		Phase:     s.reminders.Phase(),
		Reminders: s.reminders.Items(),
		Form:      s.form,
		Creating:  s.creating.State(),
	}
}
