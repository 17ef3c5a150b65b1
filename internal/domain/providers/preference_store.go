package providers

import (
	"context"
	"errors"
)

// ErrPreferenceNotSet is returned when no value was ever stored for a key
var ErrPreferenceNotSet = errors.New("preference not set")

// PreferenceStore persists small per-owner UI preferences such as the selected language
type PreferenceStore interface {
	// Get returns the stored value or ErrPreferenceNotSet
	Get(ctx context.Context, owner, key string) (string, error)

	// Set stores value without expiry
	Set(ctx context.Context, owner, key, value string) error
}
