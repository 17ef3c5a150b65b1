package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zatekoja/arovia/web/internal/application/navigation"
	"github.com/zatekoja/arovia/web/internal/application/notifications"
	"github.com/zatekoja/arovia/web/internal/application/screens"
	"github.com/zatekoja/arovia/web/internal/domain/providers"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	"github.com/zatekoja/arovia/web/internal/infrastructure/observability"
)

// Session is one browser's navigation state and toast channel
type Session struct {
	ID            string
	UserID        string
	Navigator     *navigation.Navigator
	Notifications *notifications.Channel

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Options configures new sessions
type Options struct {
	DefaultUserID         string
	IdleTTL               time.Duration
	ToastTTL              time.Duration
	SOSLockout            time.Duration
	LanguageRedirectDelay time.Duration
	Metrics               *observability.Metrics
	Now                   func() time.Time
}

// Manager owns every live session
type Manager struct {
	router    *navigation.Router
	api       arovia.Client
	prefs     providers.PreferenceStore
	presenter *screens.Presenter
	opts      Options

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a manager
func NewManager(router *navigation.Router, api arovia.Client, prefs providers.PreferenceStore, opts Options) *Manager {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{
		router:    router,
		api:       api,
		prefs:     prefs,
		presenter: screens.NewPresenter(),
		opts:      opts,
		sessions:  make(map[string]*Session),
	}
}

// Get returns the session with id and marks it as seen
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if ok {
		s.touch(m.opts.Now())
	}
	return s, ok
}

// Create starts a new session
func (m *Manager) Create() *Session {
	return m.create(uuid.NewString())
}

func (m *Manager) create(id string) *Session {
	channel := notifications.NewChannel(
		notifications.WithTTL(m.opts.ToastTTL),
		notifications.WithMetrics(m.opts.Metrics),
	)
	deps := screens.Deps{
		API:                   m.api,
		Notifier:              channel,
		Prefs:                 m.prefs,
		Presenter:             m.presenter,
		UserID:                m.opts.DefaultUserID,
		PrefOwner:             id,
		SOSLockout:            m.opts.SOSLockout,
		LanguageRedirectDelay: m.opts.LanguageRedirectDelay,
	}

	s := &Session{
		ID:            id,
		UserID:        m.opts.DefaultUserID,
		Navigator:     navigation.NewNavigator(m.router, deps),
		Notifications: channel,
		lastSeen:      m.opts.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		return existing
	}
	m.sessions[id] = s
	return s
}

// GetOrCreate returns the session with id, or a new one when it is unknown.
// A well-formed id from before a restart is reused so persisted preferences
// stay attached to the browser.
func (m *Manager) GetOrCreate(id string) (*Session, bool) {
	if id == "" {
		return m.Create(), true
	}
	if s, ok := m.Get(id); ok {
		return s, false
	}
	if _, err := uuid.Parse(id); err == nil {
		return m.create(id), true
	}
	return m.Create(), true
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// EvictIdle drops sessions unseen for longer than the idle TTL and
// deactivates their screens. It returns the number evicted.
func (m *Manager) EvictIdle() int {
	if m.opts.IdleTTL <= 0 {
		return 0
	}
	cutoff := m.opts.Now().Add(-m.opts.IdleTTL)

	var evicted []*Session
	m.mu.Lock()
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			evicted = append(evicted, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range evicted {
		s.Navigator.Close()
	}
	return len(evicted)
}

// Run evicts idle sessions every interval until ctx is done
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.EvictIdle(); n > 0 {
				observability.LoggerFromContext(ctx).Info().Int("evicted", n).Msg("idle sessions evicted")
			}
		}
	}
}

// Close deactivates every session
func (m *Manager) Close() {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range all {
		s.Navigator.Close()
	}
}
