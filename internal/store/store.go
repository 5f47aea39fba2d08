package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/PolarWolf314/pigment/internal/akasha"
	"github.com/PolarWolf314/pigment/internal/configs"
	perrors "github.com/PolarWolf314/pigment/internal/errors"
	"github.com/PolarWolf314/pigment/internal/identity"
	logger "github.com/PolarWolf314/pigment/internal/logging"
	"github.com/PolarWolf314/pigment/internal/palette"
	"github.com/PolarWolf314/pigment/internal/rgba"
	"github.com/PolarWolf314/pigment/internal/tint"
)

// Store owns the in-memory settings and persists them through a Backend
// after every change.
type Store struct {
	mu       sync.RWMutex
	backend  Backend
	codec    *akasha.Codec
	log      logger.Logger
	settings configs.Settings
	lastBlob string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load fallbacks and saves.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithCodec replaces the default blob codec.
func WithCodec(c *akasha.Codec) Option {
	return func(s *Store) { s.codec = c }
}

// New returns a store holding default settings. Call Load to hydrate it.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		settings: configs.Defaults(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.codec == nil {
		s.codec = akasha.NewCodec(nil)
	}
	return s
}

// Load replaces the in-memory settings with the stored ones. It never fails:
// unreadable storage or a blob that fails integrity checks yields defaults,
// and unusable fields fall back one by one. The report says which.
func (s *Store) Load(ctx context.Context) LoadReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, found, err := s.backend.Get(ctx)
	if err != nil {
		cause := fmt.Errorf("%w: %w", perrors.ErrStorageRead, err)
		s.log.Debugf("Using default settings: %v", cause)
		s.settings = configs.Defaults()
		return LoadReport{Outcome: OutcomeDefaulted, Cause: cause, Defaulted: configs.Tags()}
	}
	if !found {
		s.log.Debugf("No stored settings, using defaults")
		s.settings = configs.Defaults()
		s.lastBlob = ""
		return LoadReport{Outcome: OutcomeFresh}
	}
	s.lastBlob = blob

	text, err := s.codec.Decode(blob)
	if err != nil {
		s.log.Debugf("Using default settings: %v", err)
		s.settings = configs.Defaults()
		return LoadReport{Outcome: OutcomeDefaulted, Cause: err, Defaulted: configs.Tags()}
	}

	partial := configs.Parse(text)
	settings, defaulted := partial.Resolve()
	for _, fe := range partial.Errors {
		s.log.Debugf("Defaulting stored field: %v", fe)
	}

	report := LoadReport{
		Outcome:     OutcomeDecoded,
		FieldErrors: partial.Errors,
		Defaulted:   defaulted,
		Unknown:     partial.Unknown,
	}
	if partial.Version != nil {
		report.Version = *partial.Version
	}
	s.settings = settings

	if report.Version > 0 && report.Version < configs.CurrentVersion {
		s.log.Debugf("Upgrading stored settings from version %d to %d", report.Version, configs.CurrentVersion)
		if err := s.saveLocked(ctx); err != nil {
			s.log.Warnf("Could not upgrade stored settings: %v", err)
		} else {
			report.Upgraded = true
		}
	}
	return report
}

// saveLocked persists the current settings at the current format version.
// The caller must hold s.mu for writing.
func (s *Store) saveLocked(ctx context.Context) error {
	next := s.settings.WithVersion(configs.CurrentVersion)
	text, err := configs.Serialize(next)
	if err != nil {
		return fmt.Errorf("%w: %w", perrors.ErrStorageWrite, err)
	}
	blob, err := s.codec.Encode(text)
	if err != nil {
		return fmt.Errorf("%w: %w", perrors.ErrStorageWrite, err)
	}
	if err := s.backend.Set(ctx, blob); err != nil {
		return fmt.Errorf("%w: %w", perrors.ErrStorageWrite, err)
	}
	s.settings = next
	s.lastBlob = blob
	s.log.Debugf("Saved settings (%d byte blob)", len(blob))
	return nil
}

// update applies change to the current settings, swaps the result in, and
// saves. A failed save leaves the new value in memory.
func (s *Store) update(ctx context.Context, change func(configs.Settings) (configs.Settings, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := change(s.settings)
	if err != nil {
		return err
	}
	s.settings = next
	return s.saveLocked(ctx)
}

// Save persists the current settings as they are.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() configs.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

func (s *Store) ShowSuggestion() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.ShowSuggestion
}

func (s *Store) StylesheetPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.StylesheetPath
}

func (s *Store) GradientBrightness() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.GradientBrightness
}

func (s *Store) GradientDarkness() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.GradientDarkness
}

func (s *Store) HashSource() identity.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.HashSource
}

func (s *Store) ProjectIndicators() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.settings.ProjectIndicators)
}

// Palette returns a copy of both theme color lists.
func (s *Store) Palette() palette.Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return palette.Palette{
		Light: slices.Clone(s.settings.Palette.Light),
		Dark:  slices.Clone(s.settings.Palette.Dark),
	}
}

func (s *Store) SetShowSuggestion(ctx context.Context, show bool) error {
	return s.update(ctx, func(c configs.Settings) (configs.Settings, error) {
		return c.WithShowSuggestion(show), nil
	})
}

func (s *Store) SetStylesheetPath(ctx context.Context, path string) error {
	return s.update(ctx, func(c configs.Settings) (configs.Settings, error) {
		return c.WithStylesheetPath(path)
	})
}

func (s *Store) SetGradientBrightness(ctx context.Context, pct int) error {
	return s.update(ctx, func(c configs.Settings) (configs.Settings, error) {
		return c.WithGradientBrightness(pct)
	})
}

func (s *Store) SetGradientDarkness(ctx context.Context, pct int) error {
	return s.update(ctx, func(c configs.Settings) (configs.Settings, error) {
		return c.WithGradientDarkness(pct)
	})
}

func (s *Store) SetHashSource(ctx context.Context, source identity.Source) error {
	return s.update(ctx, func(c configs.Settings) (configs.Settings, error) {
		return c.WithHashSource(source)
	})
}

func (s *Store) SetProjectIndicators(ctx context.Context, names []string) error {
	return s.update(ctx, func(c configs.Settings) (configs.Settings, error) {
		return c.WithProjectIndicators(names)
	})
}

// SetColors replaces the whole color list for theme.
func (s *Store) SetColors(ctx context.Context, theme palette.Theme, colors []rgba.Color) error {
	return s.update(ctx, func(c configs.Settings) (configs.Settings, error) {
		return c.WithColors(theme, colors)
	})
}

// Replace swaps in a complete settings value, as produced by an import.
func (s *Store) Replace(ctx context.Context, next configs.Settings) error {
	return s.update(ctx, func(configs.Settings) (configs.Settings, error) {
		return next.Clone(), nil
	})
}

// Reset restores every field to its default and saves.
func (s *Store) Reset(ctx context.Context) error {
	return s.update(ctx, func(configs.Settings) (configs.Settings, error) {
		return configs.Defaults(), nil
	})
}

// Color returns the accent for identity as #rrggbbaa.
func (s *Store) Color(identity string, theme palette.Theme) string {
	return tint.ForIdentity(identity, theme, s.Palette()).Hex()
}

// ColorByScalar returns the palette color at k as #rrggbbaa.
func (s *Store) ColorByScalar(k float64, theme palette.Theme) string {
	return tint.ByScalar(k, s.Palette(), theme).Hex()
}

// GreyDarken renders color in its inactive form at the default intensity.
func (s *Store) GreyDarken(color string) (string, error) {
	c, err := rgba.Parse(color)
	if err != nil {
		return "", err
	}
	return c.GreyDarken(rgba.DefaultGreyIntensity), nil
}

// Watch calls onChange with a fresh load report each time another process
// changes the stored blob. It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context, onChange func(LoadReport)) error {
	w, ok := s.backend.(Watcher)
	if !ok {
		return perrors.ErrWatchUnsupported
	}
	return w.Watch(ctx, func() {
		blob, found, err := s.backend.Get(ctx)
		if err == nil && found && s.isLastBlob(blob) {
			return
		}
		onChange(s.Load(ctx))
	})
}

func (s *Store) isLastBlob(blob string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return blob == s.lastBlob
}
