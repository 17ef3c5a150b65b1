package arovia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
	"github.com/zatekoja/arovia/web/pkg/retry"
)

// Client is the REST boundary of the Arovia backend
type Client interface {
	ListDoctors(ctx context.Context) ([]entities.Doctor, error)
	BookDoctor(ctx context.Context, req entities.BookingRequest) error
	ListMedicines(ctx context.Context) ([]entities.Medicine, error)
	ListMedicinesByCategory(ctx context.Context, category string) ([]entities.Medicine, error)
	SendChat(ctx context.Context, req entities.ChatRequest) (*entities.ChatResponse, error)
	ListEmergencyContacts(ctx context.Context) ([]entities.EmergencyContact, error)
	TriggerSOS(ctx context.Context, req entities.SOSRequest) (*entities.SOSResponse, error)
	GenerateHealthPlan(ctx context.Context, req entities.HealthPlanRequest) (*entities.HealthPlanResponse, error)
	AnalyzeSymptoms(ctx context.Context, req entities.SymptomAnalysisRequest) (*entities.SymptomAnalysisResponse, error)
	ListDiseaseAlerts(ctx context.Context) ([]entities.DiseaseAlert, error)
	ReportDisease(ctx context.Context, report entities.DiseaseReport) error
	ListReminders(ctx context.Context, userID string) ([]entities.HealthReminder, error)
	CreateReminder(ctx context.Context, reminder entities.HealthReminder) (*entities.HealthReminder, error)
}

// Operation names used for spans, metrics and error presentation
const (
	OpListDoctors             = "list_doctors"
	OpBookDoctor              = "book_doctor"
	OpListMedicines           = "list_medicines"
	OpListMedicinesByCategory = "list_medicines_by_category"
	OpSendChat                = "send_chat"
	OpListEmergencyContacts   = "list_emergency_contacts"
	OpTriggerSOS              = "trigger_sos"
	OpGenerateHealthPlan      = "generate_health_plan"
	OpAnalyzeSymptoms         = "analyze_symptoms"
	OpListDiseaseAlerts       = "list_disease_alerts"
	OpReportDisease           = "report_disease"
	OpListReminders           = "list_reminders"
	OpCreateReminder          = "create_reminder"
)

// HTTPClient implements Client over plain JSON request/response calls
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	readRetry  retry.Config
	metrics    *observability.Metrics
}

// Option configures an HTTPClient
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithTimeout bounds every request; zero means no client-side bound
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = d
	}
}

// WithReadAttempts retries reads on NetworkUnavailable up to n attempts in total
func WithReadAttempts(n int) Option {
	return func(c *HTTPClient) {
		c.readRetry.MaxAttempts = n
	}
}

// WithMetrics records call counts and durations
func WithMetrics(m *observability.Metrics) Option {
	return func(c *HTTPClient) {
		c.metrics = m
	}
}

// NewClient creates a client rooted at baseURL, which includes the /api prefix
func NewClient(baseURL string, opts ...Option) *HTTPClient {
	readRetry := retry.DefaultConfig()
	readRetry.RetryIf = apperrors.IsRetryable

	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		readRetry:  readRetry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) ListDoctors(ctx context.Context) ([]entities.Doctor, error) {
	var out []entities.Doctor
	if err := c.read(ctx, OpListDoctors, "/doctors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) BookDoctor(ctx context.Context, req entities.BookingRequest) error {
	return c.doJSON(ctx, OpBookDoctor, http.MethodPost, "/doctors/book", req, nil)
}

func (c *HTTPClient) ListMedicines(ctx context.Context) ([]entities.Medicine, error) {
	var out []entities.Medicine
	if err := c.read(ctx, OpListMedicines, "/medicines", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListMedicinesByCategory(ctx context.Context, category string) ([]entities.Medicine, error) {
	if strings.TrimSpace(category) == "" {
		return nil, apperrors.NewValidationError("category is required")
	}
	var out []entities.Medicine
	path := fmt.Sprintf("/medicines/category/%s", url.PathEscape(category))
	if err := c.read(ctx, OpListMedicinesByCategory, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SendChat(ctx context.Context, req entities.ChatRequest) (*entities.ChatResponse, error) {
	out := &entities.ChatResponse{}
	if err := c.doJSON(ctx, OpSendChat, http.MethodPost, "/chat/dadi", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListEmergencyContacts(ctx context.Context) ([]entities.EmergencyContact, error) {
	var out []entities.EmergencyContact
	if err := c.read(ctx, OpListEmergencyContacts, "/emergency/contacts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) TriggerSOS(ctx context.Context, req entities.SOSRequest) (*entities.SOSResponse, error) {
	out := &entities.SOSResponse{}
	if err := c.doJSON(ctx, OpTriggerSOS, http.MethodPost, "/emergency/sos", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GenerateHealthPlan(ctx context.Context, req entities.HealthPlanRequest) (*entities.HealthPlanResponse, error) {
	out := &entities.HealthPlanResponse{}
	if err := c.doJSON(ctx, OpGenerateHealthPlan, http.MethodPost, "/health/planner", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AnalyzeSymptoms(ctx context.Context, req entities.SymptomAnalysisRequest) (*entities.SymptomAnalysisResponse, error) {
	out := &entities.SymptomAnalysisResponse{}
	if err := c.doJSON(ctx, OpAnalyzeSymptoms, http.MethodPost, "/symptoms/analyze", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListDiseaseAlerts(ctx context.Context) ([]entities.DiseaseAlert, error) {
	var out []entities.DiseaseAlert
	if err := c.read(ctx, OpListDiseaseAlerts, "/disease/alerts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ReportDisease(ctx context.Context, report entities.DiseaseReport) error {
	return c.doJSON(ctx, OpReportDisease, http.MethodPost, "/disease/report", report, nil)
}

func (c *HTTPClient) ListReminders(ctx context.Context, userID string) ([]entities.HealthReminder, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.NewValidationError("user id is required")
	}
	var out []entities.HealthReminder
	path := fmt.Sprintf("/reminders/%s", url.PathEscape(userID))
	if err := c.read(ctx, OpListReminders, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateReminder(ctx context.Context, reminder entities.HealthReminder) (*entities.HealthReminder, error) {
	out := &entities.HealthReminder{}
	if err := c.doJSON(ctx, OpCreateReminder, http.MethodPost, "/reminders", reminder, out); err != nil {
		return nil, err
	}
	return out, nil
}

// read performs a GET, retrying only transport failures when configured to
func (c *HTTPClient) read(ctx context.Context, op, path string, out interface{}) error {
	return retry.DoWithLog(ctx, c.readRetry, func() error {
		return c.doJSON(ctx, op, http.MethodGet, path, nil, out)
	}, func(attempt int, err error, next time.Duration) {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("operation", op).
			Int("attempt", attempt).
			Dur("next_delay", next).
			Msg("retrying remote read")
	})
}

func (c *HTTPClient) doJSON(ctx context.Context, op, method, path string, in, out interface{}) (err error) {
	ctx, span := observability.StartSpan(ctx, "arovia."+op)
	defer span.End()
	observability.SetSpanAttributes(span,
		attribute.String("http.method", method),
		attribute.String("arovia.path", path),
	)

	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = strings.ToLower(string(apperrors.TypeOf(err)))
			observability.RecordError(span, err)
		}
		observability.RecordAPICallMetric(ctx, c.metrics, op, outcome, time.Since(start))
	}()

	var body io.Reader
	if in != nil {
		payload, marshalErr := json.Marshal(in)
		if marshalErr != nil {
			return fmt.Errorf("encode %s request: %w", op, marshalErr)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.Canceled {
			return apperrors.NewCanceledError(op+" canceled", err)
		}
		return apperrors.NewNetworkUnavailableError(op+" failed to reach remote api", err)
	}
	defer resp.Body.Close()

	observability.SetSpanAttributes(span, attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return apperrors.NewServerRejectedError(op+" rejected by remote api", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() == context.Canceled {
			return apperrors.NewCanceledError(op+" canceled", err)
		}
		return apperrors.NewMalformedResponseError(op+" returned an unreadable body", err)
	}

	return nil
}
