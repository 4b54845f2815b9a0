// Package clientkit assembles the authenticated API transport, the typed
// service wrappers, the session state controller and the language preference
// syncer into one ready-to-use bundle.
//
// Most applications only need the two entry points:
//
//	kit, err := clientkit.New(clientkit.WithNavigator(nav))
//	if err != nil { ... }
//	defer kit.Close()
//
//	kit.Initialize(ctx) // resolve the session before rendering guarded routes
//
// Individual packages remain usable on their own for callers that want a
// different composition.
package clientkit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arenahub/clientkit/core/apiclient"
	"github.com/arenahub/clientkit/core/authstate"
	"github.com/arenahub/clientkit/core/config"
	"github.com/arenahub/clientkit/core/langsync"
	"github.com/arenahub/clientkit/core/locale"
	"github.com/arenahub/clientkit/core/logger"
	"github.com/arenahub/clientkit/services/authapi"
	"github.com/arenahub/clientkit/services/circuitapi"
	"github.com/arenahub/clientkit/services/mediaapi"
	"github.com/arenahub/clientkit/services/regionapi"
	"github.com/arenahub/clientkit/services/tournamentapi"
	"github.com/arenahub/clientkit/services/userapi"
)

// Locales the backend ships translations for.
var supportedLocales = []string{"fr", "en"}

// Kit is the fully wired client stack.
type Kit struct {
	Client      *apiclient.Client
	Auth        *authapi.Service
	Users       *userapi.Service
	Tournaments *tournamentapi.Service
	Circuits    *circuitapi.Service
	Media       *mediaapi.Service
	Regions     *regionapi.Service
	Locale      *locale.Store
	Session     *authstate.Controller
	Language    *langsync.Syncer
}

type options struct {
	log        *slog.Logger
	nav        authstate.Navigator
	clientOpts []apiclient.Option
}

// Option configures the kit created by New.
type Option func(*options)

// WithLogger configures structured logging for every component.
// Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithNavigator wires route redirects for login, logout and forced logout.
// Without it the session state still updates but no navigation happens.
func WithNavigator(nav authstate.Navigator) Option {
	return func(o *options) {
		o.nav = nav
	}
}

// WithClientOptions forwards extra options to the underlying transport.
func WithClientOptions(opts ...apiclient.Option) Option {
	return func(o *options) {
		o.clientOpts = append(o.clientOpts, opts...)
	}
}

// New loads the transport configuration from the environment and assembles
// the kit.
func New(opts ...Option) (*Kit, error) {
	var cfg apiclient.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig assembles the kit from an explicit configuration.
func NewWithConfig(cfg apiclient.Config, opts ...Option) (*Kit, error) {
	o := options{log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	store, err := locale.NewStore(cfg.DefaultLocale, supportedLocales...)
	if err != nil {
		return nil, err
	}

	clientOpts := append([]apiclient.Option{
		apiclient.WithLocaleProvider(store.Current),
		apiclient.WithLogger(o.log),
	}, o.clientOpts...)

	client, err := apiclient.New(cfg, clientOpts...)
	if err != nil {
		return nil, err
	}

	auth := authapi.New(client)
	users := userapi.New(client)
	session := authstate.New(auth, client, o.nav, client.LogoutSignal(), authstate.WithLogger(o.log))

	return &Kit{
		Client:      client,
		Auth:        auth,
		Users:       users,
		Tournaments: tournamentapi.New(client),
		Circuits:    circuitapi.New(client),
		Media:       mediaapi.New(client),
		Regions:     regionapi.New(client),
		Locale:      store,
		Session:     session,
		Language:    langsync.New(store, users, session, langsync.WithLogger(o.log)),
	}, nil
}

// Initialize runs the startup sequence: probe the session once, then align
// the UI locale with the authenticated user's stored preference. Safe to call
// from multiple mount points; only the first call does work.
func (k *Kit) Initialize(ctx context.Context) {
	k.Session.Initialize(ctx)
	if user, ok := k.Session.User(); ok {
		k.Language.SyncFromUser(user)
	}
}

// Close stops the forced-logout listener and releases the transport.
func (k *Kit) Close() error {
	return errors.Join(k.Session.Close(), k.Client.Close())
}
