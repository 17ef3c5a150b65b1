package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/infrastructure/observability"
)

// DefaultTTL is how long a toast stays visible
const DefaultTTL = 4 * time.Second

// Channel is a session's toast sink. Every Notify call produces one toast:
// there is no bound and no deduplication. Toasts dismiss themselves once
// their TTL passes.
type Channel struct {
	mu          sync.Mutex
	toasts      []entities.Toast
	subscribers map[chan entities.Toast]struct{}
	ttl         time.Duration
	now         func() time.Time
	metrics     *observability.Metrics
}

// Option configures a Channel
type Option func(*Channel)

// WithTTL overrides DefaultTTL
func WithTTL(ttl time.Duration) Option {
	return func(c *Channel) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(c *Channel) {
		c.now = now
	}
}

// WithMetrics counts toasts by kind
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Channel) {
		c.metrics = m
	}
}

// NewChannel creates an empty channel
func NewChannel(opts ...Option) *Channel {
	c := &Channel{
		subscribers: make(map[chan entities.Toast]struct{}),
		ttl:         DefaultTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notify enqueues a toast and fans it out to live subscribers
func (c *Channel) Notify(ctx context.Context, kind entities.ToastKind, text string) {
	now := c.now()
	toast := entities.Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Text:      text,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	c.toasts = append(c.pruneLocked(now), toast)
	for sub := range c.subscribers {
		select {
		case sub <- toast:
		default:
			// Slow stream; the toast is still returned by Active
		}
	}
	c.mu.Unlock()

	observability.RecordNotification(ctx, c.metrics, string(kind))
	observability.LoggerFromContext(ctx).Debug().
		Str("kind", string(kind)).
		Str("text", text).
		Msg("toast")
}

// Active returns the toasts that have not yet dismissed themselves, oldest first
func (c *Channel) Active() []entities.Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.toasts = c.pruneLocked(c.now())
	out := make([]entities.Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Dismiss removes a toast before its TTL passes
func (c *Channel) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}

// Subscribe streams toasts created after the call until ctx is done
func (c *Channel) Subscribe(ctx context.Context) <-chan entities.Toast {
	ch := make(chan entities.Toast, 16)

	c.mu.Lock()
	c.subscribers[ch] = struct{}{}
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		delete(c.subscribers, ch)
		close(ch)
		c.mu.Unlock()
	}()

	return ch
}

// SubscriberCount returns the number of live streams
func (c *Channel) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subscribers)
}

func (c *Channel) pruneLocked(now time.Time) []entities.Toast {
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	return kept
}
