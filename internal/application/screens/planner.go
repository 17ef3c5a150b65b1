package screens

import (
	"context"
	"sync"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

// PlannerView is the health planner's state
type PlannerView struct {
	Form       entities.HealthPlanForm `json:"form"`
	Plan       string                  `json:"plan,omitempty"`
	Generating ActionState             `json:"generating"`
}

// HealthPlanner asks the backend for a personalised plan
type HealthPlanner struct {
	base

	generating Action

	mu   sync.RWMutex
	form entities.HealthPlanForm
	plan string
}

func NewHealthPlanner(deps Deps) *HealthPlanner {
	return &HealthPlanner{base: newBase(deps)}
}

func (s *HealthPlanner) Path() string  { return PathHealthPlanner }
func (s *HealthPlanner) Title() string { return "Health Planner" }

func (s *HealthPlanner) Activate(ctx context.Context) {}

// Generate requests a plan for form. A previous plan stays visible on failure.
func (s *HealthPlanner) Generate(ctx context.Context, form entities.HealthPlanForm) error {
	s.mu.Lock()
	s.form = form
	s.mu.Unlock()

	if blank(form.Age) {
		return s.reject(ctx, "Please enter your age")
	}
	if _, ok := parseAge(form.Age); !ok {
		return s.reject(ctx, "Please enter a valid age")
	}

	if !s.generating.Begin() {
		return ErrBusy
	}

	reqCtx, done := s.activation.Bind(ctx)
	defer done()

	resp, err := s.deps.API.GenerateHealthPlan(reqCtx, entities.HealthPlanRequest{UserData: form, UserID: s.deps.UserID})
	if !s.Live() {
		s.generating.Abandon()
		return apperrors.NewCanceledError("screen left before plan arrived", err)
	}
	s.generating.Settle(err)
	if err != nil {
		s.fail(ctx, arovia.OpGenerateHealthPlan, err)
		return err
	}

	s.mu.Lock()
	s.plan = resp.HealthPlan
	s.mu.Unlock()

	s.succeed(ctx, "Health plan generated successfully!")
	return nil
}

func (s *HealthPlanner) View() interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return PlannerView{Form: s.form, Plan: s.plan, Generating: s.generating.State()}
}
