package navigation

import (
	"context"
	"sync"

	"github.com/zatekoja/arovia/web/internal/application/screens"
	"github.com/zatekoja/arovia/web/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

// Navigator keeps at most one active screen per session
type Navigator struct {
	router *Router
	deps   screens.Deps

	mu      sync.Mutex
	current screens.Screen
}

// NewNavigator creates a navigator with no active screen
func NewNavigator(router *Router, deps screens.Deps) *Navigator {
	return &Navigator{router: router, deps: deps}
}

// Navigate deactivates the current screen and activates a fresh one for path.
// Screen state never survives navigation, even back to the same path.
func (n *Navigator) Navigate(ctx context.Context, path string) (screens.Screen, error) {
	route, ok := n.router.Lookup(path)
	if !ok {
		return nil, apperrors.NewNotFoundError("no screen at " + path)
	}

	next := route.Factory(n.deps)

	n.mu.Lock()
	prev := n.current
	n.current = next
	n.mu.Unlock()

	if prev != nil {
		prev.Deactivate()
	}

	observability.LoggerFromContext(ctx).Debug().
		Str("path", path).
		Msg("screen activated")

	next.Activate(ctx)
	return next, nil
}

// Current returns the active screen if it is at path, activating one otherwise
func (n *Navigator) Current(ctx context.Context, path string) (screens.Screen, error) {
	n.mu.Lock()
	current := n.current
	n.mu.Unlock()

	if current != nil && current.Path() == path {
		return current, nil
	}
	return n.Navigate(ctx, path)
}

// Active returns the active screen, or nil
func (n *Navigator) Active() screens.Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Close deactivates the active screen
func (n *Navigator) Close() {
	n.mu.Lock()
	current := n.current
	n.current = nil
	n.mu.Unlock()

	if current != nil {
		current.Deactivate()
	}
}
