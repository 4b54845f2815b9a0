package authstate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/arenahub/clientkit/core/apiclient"
	"github.com/arenahub/clientkit/core/logger"
	"github.com/arenahub/clientkit/pkg/broadcast"
)

// IdentityAPI is the slice of the auth service the controller needs.
type IdentityAPI interface {
	// Me returns the currently authenticated user. A 401 means anonymous.
	Me(ctx context.Context) (User, error)
	// Logout invalidates the backend session.
	Logout(ctx context.Context) error
}

// TokenStore clears the transport's access-token slot on logout.
// Satisfied by *apiclient.Client.
type TokenStore interface {
	ClearAccessToken()
}

// Controller holds the process-wide authentication state.
type Controller struct {
	api    IdentityAPI
	tokens TokenStore
	nav    Navigator
	log    *slog.Logger

	mu          sync.RWMutex
	user        *User
	loading     bool
	initialized bool

	cancel context.CancelFunc
}

// Option configures the controller created by New.
type Option func(*Controller)

// WithLogger configures structured logging. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a controller in the loading state and registers the
// forced-logout subscription. A nil signal skips the subscription; a nil
// navigator skips redirects.
func New(api IdentityAPI, tokens TokenStore, nav Navigator, signal broadcast.Broadcaster[apiclient.LogoutEvent], opts ...Option) *Controller {
	c := &Controller{
		api:     api,
		tokens:  tokens,
		nav:     nav,
		log:     logger.Discard(),
		loading: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	if signal != nil {
		sub := signal.Subscribe(ctx)
		go c.listenForcedLogout(ctx, sub)
	}

	return c
}

// Close stops the forced-logout listener.
func (c *Controller) Close() error {
	c.cancel()
	return nil
}

// Initialize performs the one-time startup identity probe. Any failure,
// including the 401 an anonymous visitor gets, resolves to the anonymous
// state; Initialize never reports an error. Calls after the first are no-ops.
func (c *Controller) Initialize(ctx context.Context) {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return
	}
	c.initialized = true
	c.mu.Unlock()

	user, err := c.api.Me(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.log.DebugContext(ctx, "startup identity probe resolved to anonymous",
			logger.Component("authstate"),
			logger.Error(err),
		)
		c.user = nil
		return
	}
	c.user = &user
}

// Login stores the identity after a completed sign-in request and, when the
// user is on the sign-in or registration screen, redirects to the dashboard.
// Idempotent for the same user.
func (c *Controller) Login(user User) {
	c.mu.Lock()
	c.user = &user
	c.loading = false
	c.mu.Unlock()

	c.log.Info("user signed in",
		logger.Component("authstate"),
		logger.UserID(user.ID.String()),
	)

	if c.nav == nil {
		return
	}
	if current := c.nav.Current(); current == RouteLogin || current == RouteRegister {
		c.nav.Go(RouteDashboard)
	}
}

// Logout ends the session. The backend call is best effort: its failure is
// logged and swallowed because the user's intent to leave must always succeed
// locally. Identity and access token are cleared unconditionally.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.api.Logout(ctx); err != nil {
		c.log.WarnContext(ctx, "backend logout failed, clearing local state anyway",
			logger.Component("authstate"),
			logger.Error(err),
		)
	}

	c.clearIdentity()

	if c.nav != nil {
		c.nav.Go(RouteLogin)
	}
}

// User returns the authenticated identity, or ok=false when anonymous.
func (c *Controller) User() (User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return User{}, false
	}
	return *c.user, true
}

// IsAuthenticated reports whether an identity is currently held.
func (c *Controller) IsAuthenticated() bool {
	_, ok := c.User()
	return ok
}

// IsLoading reports whether the startup probe is still in flight. Route
// guards must treat true as "decision deferred".
func (c *Controller) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// listenForcedLogout reacts to the transport's signal that a silent refresh
// failed. The backend already rejected the session, so no logout call is made.
func (c *Controller) listenForcedLogout(ctx context.Context, sub broadcast.Subscriber[apiclient.LogoutEvent]) {
	defer sub.Close()

	for range sub.Receive(ctx) {
		c.log.Info("forced logout received, clearing identity",
			logger.Component("authstate"),
		)
		c.clearIdentity()
		if c.nav != nil {
			c.nav.Go(RouteLogin)
		}
	}
}

func (c *Controller) clearIdentity() {
	c.mu.Lock()
	c.user = nil
	c.loading = false
	c.mu.Unlock()

	if c.tokens != nil {
		c.tokens.ClearAccessToken()
	}
}
