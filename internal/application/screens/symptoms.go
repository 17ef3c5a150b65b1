package screens

import (
	"context"
	"sync"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

// SymptomsView is the symptom checker's state
type SymptomsView struct {
	Form      entities.SymptomForm `json:"form"`
	Analysis  string               `json:"analysis,omitempty"`
	Analyzing ActionState          `json:"analyzing"`
}

// SymptomChecker sends free-text symptoms for analysis
type SymptomChecker struct {
	base

	analyzing Action

	mu       sync.RWMutex
	form     entities.SymptomForm
	analysis string
}

func NewSymptomChecker(deps Deps) *SymptomChecker {
	return &SymptomChecker{base: newBase(deps)}
}

func (s *SymptomChecker) Path() string  { return PathSymptomChecker }
func (s *SymptomChecker) Title() string { return "Symptom Checker" }

func (s *SymptomChecker) Activate(ctx context.Context) {}

// Analyze submits form. Age is optional but must be valid when given.
func (s *SymptomChecker) Analyze(ctx context.Context, form entities.SymptomForm) error {
	s.mu.Lock()
	s.form = form
	s.mu.Unlock()

	if blank(form.Symptoms) {
		return s.reject(ctx, "Please describe your symptoms")
	}
	if !blank(form.Age) {
		if _, ok := parseAge(form.Age); !ok {
			return s.reject(ctx, "Please enter a valid age")
		}
	}

	if !s.analyzing.Begin() {
		return ErrBusy
	}

	reqCtx, done := s.activation.Bind(ctx)
	defer done()

	resp, err := s.deps.API.AnalyzeSymptoms(reqCtx, entities.SymptomAnalysisRequest{
		Symptoms: form.Symptoms,
		Age:      form.Age,
		UserID:   s.deps.UserID,
	})
	if !s.Live() {
		s.analyzing.Abandon()
		return apperrors.NewCanceledError("screen left before analysis arrived", err)
	}
	s.analyzing.Settle(err)
	if err != nil {
		s.fail(ctx, arovia.OpAnalyzeSymptoms, err)
		return err
	}

	s.mu.Lock()
	s.analysis = resp.Analysis
	s.mu.Unlock()

	s.succeed(ctx, "Symptom analysis ready")
	return nil
}

func (s *SymptomChecker) View() interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SymptomsView{Form: s.form, Analysis: s.analysis, Analyzing: s.analyzing.State()}
}
