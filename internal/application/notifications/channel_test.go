package notifications

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestChannel_NotifyNoDeduplication(t *testing.T) {
	channel := NewChannel()
	ctx := context.Background()

	channel.Notify(ctx, entities.ToastError, "Failed to load doctors")
	channel.Notify(ctx, entities.ToastError, "Failed to load doctors")
	channel.Notify(ctx, entities.ToastSuccess, "Paracetamol 500mg added to cart")

	active := channel.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "Failed to load doctors", active[0].Text)
	assert.Equal(t, entities.ToastSuccess, active[2].Kind)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestChannel_AutoDismiss(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	channel := NewChannel(WithTTL(4*time.Second), WithClock(clock.Now))
	ctx := context.Background()

	channel.Notify(ctx, entities.ToastSuccess, "first")
	clock.Advance(3 * time.Second)
	channel.Notify(ctx, entities.ToastSuccess, "second")

	assert.Len(t, channel.Active(), 2)

	clock.Advance(time.Second)
	active := channel.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Text)

	clock.Advance(4 * time.Second)
	assert.Empty(t, channel.Active())
}

func TestChannel_Dismiss(t *testing.T) {
	channel := NewChannel()
	channel.Notify(context.Background(), entities.ToastError, "Failed to trigger SOS")

	active := channel.Active()
	require.Len(t, active, 1)

	channel.Dismiss(active[0].ID)
	assert.Empty(t, channel.Active())
}

func TestChannel_Subscribe(t *testing.T) {
	channel := NewChannel()
	ctx, cancel := context.WithCancel(context.Background())

	stream := channel.Subscribe(ctx)
	assert.Equal(t, 1, channel.SubscriberCount())

	channel.Notify(context.Background(), entities.ToastSuccess, "Health plan generated successfully!")

	select {
	case toast := <-stream:
		assert.Equal(t, "Health plan generated successfully!", toast.Text)
	case <-time.After(time.Second):
		t.Fatal("toast was not streamed")
	}

	cancel()
	assert.Eventually(t, func() bool { return channel.SubscriberCount() == 0 }, time.Second, 10*time.Millisecond)

	_, open := <-stream
	assert.False(t, open)
}
