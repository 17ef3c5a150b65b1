package screens

import (
	"context"
	"strings"
	"sync"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

// RadarView is the disease radar's state
type RadarView struct {
	Phase     Phase                   `json:"phase"`
	Alerts    []entities.DiseaseAlert `json:"alerts"`
	Report    entities.DiseaseReport  `json:"report"`
	Reporting ActionState             `json:"reporting"`
}

// DiseaseRadar lists community disease alerts and accepts new reports
type DiseaseRadar struct {
	base

	alerts    Collection[entities.DiseaseAlert]
	reporting Action

	mu     sync.RWMutex
	report entities.DiseaseReport
}

func NewDiseaseRadar(deps Deps) *DiseaseRadar {
	return &DiseaseRadar{base: newBase(deps)}
}

func (s *DiseaseRadar) Path() string  { return PathDiseaseRadar }
func (s *DiseaseRadar) Title() string { return "Disease Radar" }

func (s *DiseaseRadar) Activate(ctx context.Context) {
	load(ctx, &s.base, &s.alerts, arovia.OpListDiseaseAlerts, s.deps.API.ListDiseaseAlerts)
}

// Report submits a case report. The alert list is not re-read.
func (s *DiseaseRadar) Report(ctx context.Context, village, disease string) error {
	report := entities.DiseaseReport{Village: strings.TrimSpace(village), Disease: strings.TrimSpace(disease)}

	s.mu.Lock()
	s.report = report
	s.mu.Unlock()

	if report.Village == "" || report.Disease == "" {
		return s.reject(ctx, "Please enter village and disease")
	}
	if !s.reporting.Begin() {
		return ErrBusy
	}

	reqCtx, done := s.activation.Bind(ctx)
	defer done()

	err := s.deps.API.ReportDisease(reqCtx, report)
	if !s.Live() {
		s.reporting.Abandon()
		return apperrors.NewCanceledError("screen left before report settled", err)
	}
	s.reporting.Settle(err)
	if err != nil {
		s.fail(ctx, arovia.OpReportDisease, err)
		return err
	}

	s.mu.Lock()
	s.report = entities.DiseaseReport{}
	s.mu.Unlock()

	s.succeed(ctx, "Disease report submitted")
	return nil
}

func (s *DiseaseRadar) View() interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return RadarView{
		Phase:     s.alerts.Phase(),
		Alerts:    s.alerts.Items(),
		Report:    s.report,
		Reporting: s.reporting.State(),
	}
}
