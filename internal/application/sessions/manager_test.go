package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/arovia/web/internal/adapters/preferences"
	"github.com/zatekoja/arovia/web/internal/application/navigation"
	"github.com/zatekoja/arovia/web/internal/application/screens"
	"github.com/zatekoja/arovia/web/internal/domain/entities"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestManager(c *clock) *Manager {
	return NewManager(navigation.DefaultRouter(), nil, preferences.NewMemoryStore(), Options{
		DefaultUserID: "user_123",
		IdleTTL:       time.Hour,
		Now:           c.Now,
	})
}

func TestManager_GetOrCreate(t *testing.T) {
	m := newTestManager(&clock{now: time.Now()})

	s, created := m.GetOrCreate("")
	require.True(t, created)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "user_123", s.UserID)

	again, created := m.GetOrCreate(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)

	_, created = m.GetOrCreate("unknown")
	assert.True(t, created)
	assert.Equal(t, 2, m.Len())

	// A known-format id survives a restart
	restored, created := m.GetOrCreate("0b6f8e52-6d1c-4a7e-9a43-2f1d6f4b9c10")
	assert.True(t, created)
	assert.Equal(t, "0b6f8e52-6d1c-4a7e-9a43-2f1d6f4b9c10", restored.ID)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := newTestManager(&clock{now: time.Now()})
	a := m.Create()
	b := m.Create()

	scr, err := a.Navigator.Navigate(context.Background(), screens.PathLanguage)
	require.NoError(t, err)
	_, err = scr.(*screens.LanguageSelection).Select(context.Background(), "hi")
	require.NoError(t, err)

	assert.Len(t, a.Notifications.Active(), 1)
	assert.Empty(t, b.Notifications.Active())

	other, err := b.Navigator.Navigate(context.Background(), screens.PathLanguage)
	require.NoError(t, err)
	assert.Empty(t, other.View().(screens.LanguageView).Selected)
	assert.Equal(t, entities.ToastSuccess, a.Notifications.Active()[0].Kind)
}

func TestManager_EvictIdle(t *testing.T) {
	c := &clock{now: time.Now()}
	m := newTestManager(c)

	stale := m.Create()
	c.Advance(50 * time.Minute)
	fresh := m.Create()
	c.Advance(20 * time.Minute)

	assert.Equal(t, 1, m.EvictIdle())

	_, ok := m.Get(stale.ID)
	assert.False(t, ok)
	_, ok = m.Get(fresh.ID)
	assert.True(t, ok)
}
