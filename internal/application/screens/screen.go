package screens

import (
	"context"
	stderrors "errors"
	"strconv"
	"strings"
	"time"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/domain/providers"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	"github.com/zatekoja/arovia/web/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

// Screen paths
const (
	PathLanguage       = "/"
	PathDashboard      = "/dashboard"
	PathDoctors        = "/doctors"
	PathMedicines      = "/medicines"
	PathDadiChat       = "/dadi-chat"
	PathEmergency      = "/emergency"
	PathHealthPlanner  = "/health-planner"
	PathDiseaseRadar   = "/disease-radar"
	PathSymptomChecker = "/symptom-checker"
	PathReminders      = "/reminders"
)

// ErrBusy is returned when an action is submitted while the same action is in flight
var ErrBusy = stderrors.New("action already in progress")

// Screen is one routable view. Activate performs the screen's primary read
// exactly once; Deactivate aborts everything still in flight.
type Screen interface {
	Path() string
	Title() string
	Activate(ctx context.Context)
	Deactivate()
	View() interface{}
}

// Deps is everything a screen needs from the outside world
type Deps struct {
	API       arovia.Client
	Notifier  providers.Notifier
	Prefs     providers.PreferenceStore
	Presenter *Presenter

	// UserID is the identity sent with user-scoped requests
	UserID string
	// PrefOwner scopes persisted preferences, normally the session id
	PrefOwner string

	SOSLockout            time.Duration
	LanguageRedirectDelay time.Duration
}

const (
	defaultSOSLockout            = 3 * time.Second
	defaultLanguageRedirectDelay = time.Second
)

func (d Deps) withDefaults() Deps {
	if d.Presenter == nil {
		d.Presenter = NewPresenter()
	}
	if d.SOSLockout <= 0 {
		d.SOSLockout = defaultSOSLockout
	}
	if d.LanguageRedirectDelay <= 0 {
		d.LanguageRedirectDelay = defaultLanguageRedirectDelay
	}
	return d
}

// base carries the plumbing shared by every screen
type base struct {
	deps       Deps
	activation *Activation
}

func newBase(deps Deps) base {
	return base{deps: deps.withDefaults(), activation: newActivation()}
}

// Deactivate ends the activation
func (b *base) Deactivate() {
	b.activation.End()
}

// Live reports whether the screen is still the active one
func (b *base) Live() bool {
	return b.activation.Live()
}

func (b *base) succeed(ctx context.Context, text string) {
	b.deps.Notifier.Notify(ctx, entities.ToastSuccess, text)
}

// fail announces err unless the screen has been left
func (b *base) fail(ctx context.Context, op string, err error) {
	if !b.activation.Live() || apperrors.Is(err, apperrors.ErrorTypeCanceled) {
		return
	}
	observability.LoggerFromContext(ctx).Warn().
		Str("operation", op).
		Str("error_type", string(apperrors.TypeOf(err))).
		Int("status", apperrors.StatusOf(err)).
		Msg("screen operation failed")
	b.deps.Notifier.Notify(ctx, entities.ToastError, b.deps.Presenter.Text(op, err))
}

// reject announces a validation failure and returns it
func (b *base) reject(ctx context.Context, message string) error {
	err := apperrors.NewValidationError(message)
	b.deps.Notifier.Notify(ctx, entities.ToastError, message)
	return err
}

// load runs the primary read of a screen into coll
func load[T any](ctx context.Context, b *base, coll *Collection[T], op string, fetch func(context.Context) ([]T, error)) {
	if !coll.begin() {
		return
	}
	ctx, done := b.activation.Bind(ctx)
	defer done()

	items, err := fetch(ctx)
	if !b.activation.Live() {
		return
	}
	if err != nil {
		coll.fail()
		b.fail(ctx, op, err)
		return
	}
	coll.succeed(items)
}

func parseAge(raw string) (int, bool) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || age <= 0 || age > 150 {
		return 0, false
	}
	return age, true
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
