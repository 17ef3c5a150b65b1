package screens

import (
	"context"
	"sync"
)

// Activation scopes requests to the period a screen is displayed. Ending it
// aborts in-flight requests and makes their late results discardable.
type Activation struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func newActivation() *Activation {
	ctx, cancel := context.WithCancel(context.Background())
	return &Activation{ctx: ctx, cancel: cancel}
}

// Bind derives a request context that keeps parent's values but lives
// exactly as long as the activation.
func (a *Activation) Bind(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	stop := context.AfterFunc(a.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// Live reports whether the screen is still displayed
func (a *Activation) Live() bool {
	return a.ctx.Err() == nil
}

// End cancels everything bound to the activation. Safe to call twice.
func (a *Activation) End() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancel()
}
