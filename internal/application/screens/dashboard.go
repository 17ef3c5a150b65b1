package screens

import (
	"context"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
)

// Features are the dashboard tiles, in display order
var Features = []entities.Feature{
	{Title: "Book Doctor", Description: "Find & book nearby doctors and specialists", Path: PathDoctors},
	{Title: "Emergency Help", Description: "24/7 emergency assistance & SOS", Path: PathEmergency},
	{Title: "Buy Medicines", Description: "Affordable medicines with discounts", Path: PathMedicines},
	{Title: "Dadi Chatbot", Description: "Health advice from your caring AI grandmother", Path: PathDadiChat},
	{Title: "Health Planner", Description: "AI-powered personalized health plans", Path: PathHealthPlanner},
	{Title: "Disease Radar", Description: "Community health tracking & alerts", Path: PathDiseaseRadar},
}

// DashboardView lists the entry points
type DashboardView struct {
	Features []entities.Feature `json:"features"`
}

// Dashboard is static navigation with no remote state
type Dashboard struct {
	base
}

func NewDashboard(deps Deps) *Dashboard {
	return &Dashboard{base: newBase(deps)}
}

func (s *Dashboard) Path() string  { return PathDashboard }
func (s *Dashboard) Title() string { return "Dashboard" }

func (s *Dashboard) Activate(ctx context.Context) {}

func (s *Dashboard) View() interface{} {
	features := make([]entities.Feature, len(Features))
	copy(features, Features)
	return DashboardView{Features: features}
}
