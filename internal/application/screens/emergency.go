package screens

import (
	"context"
	"sync"
	"time"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

// EmergencyView is the emergency screen's state
type EmergencyView struct {
	Phase     Phase                       `json:"phase"`
	Contacts  []entities.EmergencyContact `json:"contacts"`
	SOSLocked bool                        `json:"sos_locked"`
	SOS       ActionState                 `json:"sos"`
}

// EmergencyHelp lists emergency contacts and triggers SOS. After each trigger
// further triggers are refused until the lockout window has passed.
type EmergencyHelp struct {
	base

	contacts Collection[entities.EmergencyContact]
	sos      Action

	mu     sync.Mutex
	locked bool
	timer  *time.Timer
}

func NewEmergencyHelp(deps Deps) *EmergencyHelp {
	return &EmergencyHelp{base: newBase(deps)}
}

func (s *EmergencyHelp) Path() string  { return PathEmergency }
func (s *EmergencyHelp) Title() string { return "Emergency Help" }

func (s *EmergencyHelp) Activate(ctx context.Context) {
	load(ctx, &s.base, &s.contacts, arovia.OpListEmergencyContacts, s.deps.API.ListEmergencyContacts)
}

// TriggerSOS sends the SOS. It returns false without a request while locked.
// The lockout window starts once the request has settled.
func (s *EmergencyHelp) TriggerSOS(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.locked {
		s.mu.Unlock()
		return false, nil
	}
	s.locked = true
	s.mu.Unlock()

	s.sos.Begin()

	reqCtx, done := s.activation.Bind(ctx)
	defer done()

	_, err := s.deps.API.TriggerSOS(reqCtx, entities.SOSRequest{Location: entities.MockSOSLocation})
	if !s.Live() {
		s.sos.Abandon()
		return true, apperrors.NewCanceledError("screen left before SOS settled", err)
	}
	s.sos.Settle(err)
	if err != nil {
		s.fail(ctx, arovia.OpTriggerSOS, err)
	} else {
		s.succeed(ctx, "SOS triggered! Emergency services notified.")
	}

	s.armUnlock()
	return true, err
}

func (s *EmergencyHelp) armUnlock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.deps.SOSLockout, func() {
		s.mu.Lock()
		s.locked = false
		s.mu.Unlock()
	})
}

// Locked reports whether SOS is currently refused
func (s *EmergencyHelp) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Deactivate also stops a pending unlock
func (s *EmergencyHelp) Deactivate() {
	s.base.Deactivate()

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
}

func (s *EmergencyHelp) View() interface{} {
	return EmergencyView{
		Phase:     s.contacts.Phase(),
		Contacts:  s.contacts.Items(),
		SOSLocked: s.Locked(),
		SOS:       s.sos.State(),
	}
}
