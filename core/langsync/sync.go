package langsync

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/arenahub/clientkit/core/authstate"
	"github.com/arenahub/clientkit/core/locale"
	"github.com/arenahub/clientkit/core/logger"
)

// LanguageAPI persists and retrieves the backend's stored preference.
// Satisfied by the user service.
type LanguageAPI interface {
	GetLanguage(ctx context.Context) (string, error)
	UpdateLanguage(ctx context.Context, code string) error
}

// UserSource exposes the current authenticated user, if any.
// Satisfied by *authstate.Controller.
type UserSource interface {
	User() (authstate.User, bool)
}

// Syncer mirrors the language preference between the locale store and the
// backend profile, with rollback on persistence failure.
type Syncer struct {
	locale *locale.Store
	api    LanguageAPI
	users  UserSource
	log    *slog.Logger

	mu         sync.Mutex
	loading    bool
	syncedUser uuid.UUID
}

// Option configures the syncer created by New.
type Option func(*Syncer)

// WithLogger configures structured logging. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Syncer) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a syncer over the given locale store, language API and user
// source.
func New(store *locale.Store, api LanguageAPI, users UserSource, opts ...Option) *Syncer {
	s := &Syncer{
		locale: store,
		api:    api,
		users:  users,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChangeLanguage switches the UI locale to code and persists the preference
// for authenticated users. The switch is optimistic; if persistence fails the
// locale rolls back to its prior value and the failure is logged, not
// surfaced, since the UI already shows a consistent state. Invalid or
// unsupported codes are rejected up front. Equal codes are a no-op.
func (s *Syncer) ChangeLanguage(ctx context.Context, code string) error {
	norm, err := locale.Normalize(code)
	if err != nil {
		return err
	}

	previous := s.locale.Current()
	if norm == previous {
		return nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	// Optimistic apply: the UI switches before the backend confirms.
	if err := s.locale.Change(norm); err != nil {
		return err
	}

	if _, ok := s.users.User(); !ok {
		return nil
	}

	if err := s.api.UpdateLanguage(ctx, norm); err != nil {
		if rbErr := s.locale.Change(previous); rbErr != nil {
			s.log.ErrorContext(ctx, "locale rollback failed",
				logger.Component("langsync"),
				logger.Locale(previous),
				logger.Error(rbErr),
			)
		}
		s.log.WarnContext(ctx, "failed to persist language preference, rolled back",
			logger.Component("langsync"),
			logger.Locale(norm),
			logger.Error(err),
		)
		return nil
	}

	return nil
}

// SyncFromUser applies the user's stored preference to the UI locale. It
// fires at most once per distinct user ID: re-fetches of the same user are
// ignored so a refreshed user object cannot loop the locale back.
func (s *Syncer) SyncFromUser(user authstate.User) {
	if user.PreferredLanguage == "" {
		return
	}

	s.mu.Lock()
	if s.syncedUser == user.ID {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	norm, err := locale.Normalize(user.PreferredLanguage)
	if err != nil {
		s.log.Warn("user carries an invalid preferred language",
			logger.Component("langsync"),
			logger.UserID(user.ID.String()),
			logger.Locale(user.PreferredLanguage),
		)
		return
	}

	if norm == s.locale.Current() {
		return
	}

	if err := s.locale.Change(norm); err != nil {
		s.log.Warn("failed to apply user's preferred language",
			logger.Component("langsync"),
			logger.Locale(norm),
			logger.Error(err),
		)
		return
	}

	s.mu.Lock()
	s.syncedUser = user.ID
	s.mu.Unlock()
}

// FetchLanguage pulls the backend's stored preference and applies it when it
// differs from the current locale. Failures are logged and otherwise ignored;
// the UI keeps its current locale.
func (s *Syncer) FetchLanguage(ctx context.Context) {
	if _, ok := s.users.User(); !ok {
		return
	}

	stored, err := s.api.GetLanguage(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "failed to fetch language preference",
			logger.Component("langsync"),
			logger.Error(err),
		)
		return
	}

	norm, err := locale.Normalize(stored)
	if err != nil || norm == s.locale.Current() {
		return
	}

	if err := s.locale.Change(norm); err != nil {
		s.log.WarnContext(ctx, "failed to apply fetched language preference",
			logger.Component("langsync"),
			logger.Locale(norm),
			logger.Error(err),
		)
	}
}

// IsLoading reports whether a language change is currently in flight.
func (s *Syncer) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Syncer) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
