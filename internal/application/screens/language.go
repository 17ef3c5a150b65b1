package screens

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/domain/providers"
	"github.com/zatekoja/arovia/web/internal/infrastructure/observability"
)

// LanguageView is the landing screen's state
type LanguageView struct {
	Languages []entities.Language `json:"languages"`
	Selected  string              `json:"selected,omitempty"`
}

// Redirect tells the caller to navigate to Path once Delay has passed
type Redirect struct {
	Path  string        `json:"path"`
	Delay time.Duration `json:"delay"`
}

// LanguageSelection persists the chosen language and hands off to the dashboard
type LanguageSelection struct {
	base

	mu       sync.RWMutex
	selected string
}

func NewLanguageSelection(deps Deps) *LanguageSelection {
	return &LanguageSelection{base: newBase(deps)}
}

func (s *LanguageSelection) Path() string  { return PathLanguage }
func (s *LanguageSelection) Title() string { return "Arovia" }

// Activate reads the stored preference, if any. There is no remote read.
func (s *LanguageSelection) Activate(ctx context.Context) {
	code, err := s.deps.Prefs.Get(ctx, s.deps.PrefOwner, entities.LanguagePreferenceKey)
	if err != nil {
		if !stderrors.Is(err, providers.ErrPreferenceNotSet) {
			observability.LoggerFromContext(ctx).Warn().Err(err).Msg("failed to read language preference")
		}
		return
	}

	s.mu.Lock()
	s.selected = code
	s.mu.Unlock()
}

// Select stores code and returns the pending redirect to the dashboard
func (s *LanguageSelection) Select(ctx context.Context, code string) (*Redirect, error) {
	lang, ok := entities.LookupLanguage(code)
	if !ok {
		return nil, s.reject(ctx, "Please choose a supported language")
	}

	if err := s.deps.Prefs.Set(ctx, s.deps.PrefOwner, entities.LanguagePreferenceKey, lang.Code); err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("failed to store language preference")
		s.deps.Notifier.Notify(ctx, entities.ToastError, "Failed to save language")
		return nil, err
	}

	s.mu.Lock()
	s.selected = lang.Code
	s.mu.Unlock()

	s.succeed(ctx, "Language set to "+lang.Name)
	return &Redirect{Path: PathDashboard, Delay: s.deps.LanguageRedirectDelay}, nil
}

func (s *LanguageSelection) View() interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	languages := make([]entities.Language, len(entities.SupportedLanguages))
	copy(languages, entities.SupportedLanguages)
	return LanguageView{Languages: languages, Selected: s.selected}
}
