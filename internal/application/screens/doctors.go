package screens

import (
	"context"
	"sync"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

// DoctorsView is the doctor booking screen's state
type DoctorsView struct {
	Phase    Phase                 `json:"phase"`
	Doctors  []entities.Doctor     `json:"doctors"`
	Selected *entities.Doctor      `json:"selected,omitempty"`
	Draft    entities.BookingDraft `json:"draft"`
	Booking  ActionState           `json:"booking"`
}

// DoctorBooking lists doctors and books an appointment with the selected one
type DoctorBooking struct {
	base

	doctors Collection[entities.Doctor]
	booking Action

	mu       sync.RWMutex
	selected *entities.Doctor
	draft    entities.BookingDraft
}

func NewDoctorBooking(deps Deps) *DoctorBooking {
	return &DoctorBooking{base: newBase(deps)}
}

func (s *DoctorBooking) Path() string  { return PathDoctors }
func (s *DoctorBooking) Title() string { return "Book a Doctor" }

func (s *DoctorBooking) Activate(ctx context.Context) {
	load(ctx, &s.base, &s.doctors, arovia.OpListDoctors, s.deps.API.ListDoctors)
}

// Select opens the booking form for the doctor with id
func (s *DoctorBooking) Select(ctx context.Context, id string) error {
	doctor, ok := s.doctors.Find(func(d entities.Doctor) bool { return d.ID == id })
	if !ok {
		return apperrors.NewNotFoundError("doctor not found")
	}
	if !doctor.Available {
		return s.reject(ctx, doctor.Name+" is not available")
	}

	s.mu.Lock()
	s.selected = &doctor
	s.mu.Unlock()
	return nil
}

// ClearSelection closes the booking form, keeping the typed draft
func (s *DoctorBooking) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// Book submits draft for the selected doctor. The draft is kept on failure
// and cleared together with the selection on success.
func (s *DoctorBooking) Book(ctx context.Context, draft entities.BookingDraft) error {
	s.mu.Lock()
	s.draft = draft
	selected := s.selected
	s.mu.Unlock()

	if selected == nil {
		return s.reject(ctx, "Please select a doctor")
	}
	if blank(draft.PatientName) || blank(draft.PatientAge) || blank(draft.ContactNumber) {
		return s.reject(ctx, "Please fill in all required fields")
	}
	age, ok := parseAge(draft.PatientAge)
	if !ok {
		return s.reject(ctx, "Please enter a valid age")
	}

	if !s.booking.Begin() {
		return ErrBusy
	}

	reqCtx, done := s.activation.Bind(ctx)
	defer done()

	err := s.deps.API.BookDoctor(reqCtx, entities.BookingRequest{
		DoctorID:      selected.ID,
		PatientName:   draft.PatientName,
		PatientAge:    age,
		Symptoms:      draft.Symptoms,
		ContactNumber: draft.ContactNumber,
		PreferredTime: draft.PreferredTime,
	})
	if !s.Live() {
		s.booking.Abandon()
		return apperrors.NewCanceledError("screen left before booking settled", err)
	}
	s.booking.Settle(err)
	if err != nil {
		s.fail(ctx, arovia.OpBookDoctor, err)
		return err
	}

	s.mu.Lock()
	s.selected = nil
	s.draft = entities.BookingDraft{}
	s.mu.Unlock()

	s.succeed(ctx, "Appointment booked successfully!")
	return nil
}

func (s *DoctorBooking) View() interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := DoctorsView{
		Phase:   s.doctors.Phase(),
		Doctors: s.doctors.Items(),
		Draft:   s.draft,
		Booking: s.booking.State(),
	}
	if s.selected != nil {
		selected := *s.selected
		view.Selected = &selected
	}
	return view
}
