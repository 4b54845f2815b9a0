package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/arenahub/clientkit/core/logger"
	"github.com/arenahub/clientkit/pkg/broadcast"
)

// Auth bootstrap endpoints. A 401 from any of these is a credential problem,
// not an expired access token, so the silent refresh must not fire for them.
const (
	loginPath   = "/auth/login"
	refreshPath = "/auth/refresh"
	mePath      = "/auth/me"
)

var bootstrapPaths = []string{loginPath, refreshPath, mePath}

// LogoutEvent is the payload-free forced-logout signal published when a
// silent refresh fails.
type LogoutEvent struct{}

// LocaleProvider supplies the current Accept-Language value per request.
type LocaleProvider func() string

// Client is the authenticated HTTP transport. It holds the process's single
// access-token slot and performs the refresh-on-401 recovery.
type Client struct {
	httpClient *http.Client
	baseURL    string
	oauthBase  string
	locale     LocaleProvider
	log        *slog.Logger

	logouts    broadcast.Broadcaster[LogoutEvent]
	ownLogouts bool

	mu    sync.RWMutex
	token string

	refreshGroup singleflight.Group
}

// Option configures the client created by New.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The caller is then
// responsible for configuring a cookie jar if refresh cookies are needed.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger configures structured logging. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithLocaleProvider sets the source of the Accept-Language header value.
// Defaults to the configured DefaultLocale.
func WithLocaleProvider(provider LocaleProvider) Option {
	return func(c *Client) {
		if provider != nil {
			c.locale = provider
		}
	}
}

// WithLogoutBroadcaster replaces the broadcaster forced-logout signals are
// published on. The client does not close an externally supplied broadcaster.
func WithLogoutBroadcaster(b broadcast.Broadcaster[LogoutEvent]) Option {
	return func(c *Client) {
		if b != nil {
			c.logouts = b
			c.ownLogouts = false
		}
	}
}

// New creates a transport client for the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingBaseURL, cfg.BaseURL)
	}

	oauthBase := cfg.OAuthBaseURL
	if oauthBase == "" {
		oauthBase = cfg.BaseURL
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	fallback := cfg.DefaultLocale
	if fallback == "" {
		fallback = "fr"
	}

	c := &Client{
		httpClient: &http.Client{Jar: jar, Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		oauthBase:  strings.TrimRight(oauthBase, "/"),
		locale:     func() string { return fallback },
		log:        logger.Discard(),
		logouts:    broadcast.NewMemoryBroadcaster[LogoutEvent](1),
		ownLogouts: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Close releases the client's broadcaster if it owns one.
func (c *Client) Close() error {
	if c.ownLogouts {
		return c.logouts.Close()
	}
	return nil
}

// SetAccessToken stores the bearer token used on subsequent requests.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearAccessToken empties the token slot.
func (c *Client) ClearAccessToken() {
	c.SetAccessToken("")
}

// AccessToken returns the currently held bearer token, or "" when absent.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// LogoutSignal exposes the broadcaster forced-logout events are published on.
// Consumers subscribe to learn that the session is unrecoverable.
func (c *Client) LogoutSignal() broadcast.Broadcaster[LogoutEvent] {
	return c.logouts
}

// OAuthRedirectURL builds the browser redirect link for an OAuth provider,
// e.g. OAuthRedirectURL("google") -> "<oauth base>/auth/google".
func (c *Client) OAuthRedirectURL(provider string) string {
	return c.oauthBase + "/auth/" + provider
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do issues a request against the API. The path is relative to the base URL;
// a non-nil body is JSON-encoded; a non-nil out receives the decoded 2xx
// response body. Non-2xx responses become *APIError. A 401 on a non-bootstrap
// path triggers at most one silent refresh and replay.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	resp, err := c.send(ctx, method, path, payload, c.AccessToken())
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusUnauthorized || isBootstrapPath(path) {
		return c.decode(resp, out)
	}

	// Consume the 401 body now: it is the error the caller gets if recovery
	// fails, and the connection must be drained before the replay.
	origErr := c.decode(resp, nil)

	token, refreshErr := c.refreshAccessToken(ctx)
	if refreshErr != nil {
		return origErr
	}

	start := time.Now()
	resp, err = c.send(ctx, method, path, payload, token)
	if err != nil {
		return err
	}

	c.log.DebugContext(ctx, "request replayed after token refresh",
		logger.Component("apiclient"),
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)

	// A second 401 after a successful refresh is final.
	return c.decode(resp, out)
}

// refreshAccessToken calls the refresh endpoint at most once regardless of
// how many in-flight requests hit 401 simultaneously; all callers share the
// outcome. On failure the token slot is cleared and the forced-logout signal
// fires exactly once.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	v, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		resp, err := c.send(ctx, http.MethodPost, refreshPath, nil, "")
		if err != nil {
			c.failSession(ctx, err)
			return nil, err
		}

		var body struct {
			AccessToken string `json:"accessToken"`
		}
		if err := c.decode(resp, &body); err != nil {
			c.failSession(ctx, err)
			return nil, err
		}

		c.SetAccessToken(body.AccessToken)
		return body.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// failSession tears the session down after an unrecoverable refresh failure.
func (c *Client) failSession(ctx context.Context, cause error) {
	c.ClearAccessToken()

	c.log.InfoContext(ctx, "token refresh failed, broadcasting forced logout",
		logger.Component("apiclient"),
		logger.Event("forced_logout"),
		logger.Error(cause),
	)

	// The signal must go out even when the triggering request's context is
	// already cancelled.
	bctx := context.WithoutCancel(ctx)
	if err := c.logouts.Broadcast(bctx, broadcast.Message[LogoutEvent]{}); err != nil {
		c.log.WarnContext(ctx, "failed to broadcast forced logout",
			logger.Component("apiclient"),
			logger.Error(err),
		)
	}
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, token string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.locale())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	return resp, nil
}

func (c *Client) decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(ErrTransport, err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	return newAPIError(resp.StatusCode, data)
}

func isBootstrapPath(path string) bool {
	for _, p := range bootstrapPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}
