package screens

import (
	"sync"
)

// Phase is the lifecycle of a screen's primary read
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseError   Phase = "error"
)

// ActionPhase is the lifecycle of one mutating sub-flow
type ActionPhase string

const (
	ActionIdle       ActionPhase = "idle"
	ActionSubmitting ActionPhase = "submitting"
	ActionSettled    ActionPhase = "settled"
)

// Outcome is how a settled action ended
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// ActionState is the externally visible state of an Action
type ActionState struct {
	Phase   ActionPhase `json:"phase"`
	Outcome Outcome     `json:"outcome,omitempty"`
}

// Action tracks Submitting -> Settled for one kind of user action.
// Only one submission may be in flight at a time.
type Action struct {
	mu      sync.Mutex
	phase   ActionPhase
	outcome Outcome
}

// Begin moves to Submitting. It returns false if a submission is already in flight.
func (a *Action) Begin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase == ActionSubmitting {
		return false
	}
	a.phase = ActionSubmitting
	a.outcome = OutcomeNone
	return true
}

// Settle records the outcome of the in-flight submission
func (a *Action) Settle(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.phase = ActionSettled
	if err != nil {
		a.outcome = OutcomeFailure
		return
	}
	a.outcome = OutcomeSuccess
}

// Abandon returns to Idle without an outcome, used when the activation ended mid-flight
func (a *Action) Abandon() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.phase = ActionIdle
	a.outcome = OutcomeNone
}

// State returns a snapshot
func (a *Action) State() ActionState {
	a.mu.Lock()
	defer a.mu.Unlock()

	phase := a.phase
	if phase == "" {
		phase = ActionIdle
	}
	return ActionState{Phase: phase, Outcome: a.outcome}
}

// Submitting reports whether a submission is in flight
func (a *Action) Submitting() bool {
	return a.State().Phase == ActionSubmitting
}
