package screens

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/arovia/web/internal/adapters/preferences"
	"github.com/zatekoja/arovia/web/internal/domain/entities"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) ListDoctors(ctx context.Context) ([]entities.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Doctor), args.Error(1)
}

func (m *MockClient) BookDoctor(ctx context.Context, req entities.BookingRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockClient) ListMedicines(ctx context.Context) ([]entities.Medicine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Medicine), args.Error(1)
}

func (m *MockClient) ListMedicinesByCategory(ctx context.Context, category string) ([]entities.Medicine, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Medicine), args.Error(1)
}

func (m *MockClient) SendChat(ctx context.Context, req entities.ChatRequest) (*entities.ChatResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ChatResponse), args.Error(1)
}

func (m *MockClient) ListEmergencyContacts(ctx context.Context) ([]entities.EmergencyContact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.EmergencyContact), args.Error(1)
}

func (m *MockClient) TriggerSOS(ctx context.Context, req entities.SOSRequest) (*entities.SOSResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SOSResponse), args.Error(1)
}

func (m *MockClient) GenerateHealthPlan(ctx context.Context, req entities.HealthPlanRequest) (*entities.HealthPlanResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.HealthPlanResponse), args.Error(1)
}

func (m *MockClient) AnalyzeSymptoms(ctx context.Context, req entities.SymptomAnalysisRequest) (*entities.SymptomAnalysisResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SymptomAnalysisResponse), args.Error(1)
}

func (m *MockClient) ListDiseaseAlerts(ctx context.Context) ([]entities.DiseaseAlert, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.DiseaseAlert), args.Error(1)
}

func (m *MockClient) ReportDisease(ctx context.Context, report entities.DiseaseReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockClient) ListReminders(ctx context.Context, userID string) ([]entities.HealthReminder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.HealthReminder), args.Error(1)
}

func (m *MockClient) CreateReminder(ctx context.Context, reminder entities.HealthReminder) (*entities.HealthReminder, error) {
	args := m.Called(ctx, reminder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.HealthReminder), args.Error(1)
}

type recordedToast struct {
	Kind entities.ToastKind
	Text string
}

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []recordedToast
}

func (n *recordingNotifier) Notify(ctx context.Context, kind entities.ToastKind, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, recordedToast{Kind: kind, Text: text})
}

func (n *recordingNotifier) All() []recordedToast {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]recordedToast, len(n.toasts))
	copy(out, n.toasts)
	return out
}

func newTestDeps(api *MockClient) (Deps, *recordingNotifier) {
	notifier := &recordingNotifier{}
	return Deps{
		API:       api,
		Notifier:  notifier,
		Prefs:     preferences.NewMemoryStore(),
		UserID:    "user_123",
		PrefOwner: "session-1",
	}, notifier
}
