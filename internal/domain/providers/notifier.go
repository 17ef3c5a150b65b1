package providers

import (
	"context"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
)

// Notifier is the fire-and-forget announcement sink screens report outcomes to
type Notifier interface {
	Notify(ctx context.Context, kind entities.ToastKind, text string)
}
