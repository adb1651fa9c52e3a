package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"github.com/nfrund/voxnote/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleScopes are requested on every login.
var GoogleScopes = []string{"openid", "email", "profile"}

// GoogleFlow runs Google's hosted authorization-code flow through redirects.
// Pending completions are parked by state until the callback arrives or the
// entry expires.
type GoogleFlow struct {
	oauth   *oauth2.Config
	pending *ttlcache.Cache[string, Completion]

	mu      sync.Mutex
	running bool
}

// DefaultMaxPending bounds how many logins may wait for their callback at once.
// When full, the oldest pending login is evicted.
const DefaultMaxPending = 10_000

// GoogleOption configures a GoogleFlow.
type GoogleOption func(*googleOptions)

type googleOptions struct {
	maxPending uint64
}

// WithMaxPending overrides DefaultMaxPending.
func WithMaxPending(n uint64) GoogleOption {
	return func(o *googleOptions) {
		if n > 0 {
			o.maxPending = n
		}
	}
}

// NewGoogleFlow creates a flow for clientID. The client secret is never
// needed here: the code is exchanged by the backend, not by this server.
func NewGoogleFlow(clientID, redirectURL string, ttl time.Duration, opts ...GoogleOption) *GoogleFlow {
	return NewGoogleFlowWithEndpoint(clientID, redirectURL, ttl, google.Endpoint, opts...)
}

// NewGoogleFlowWithEndpoint is NewGoogleFlow against a custom provider endpoint.
func NewGoogleFlowWithEndpoint(clientID, redirectURL string, ttl time.Duration, endpoint oauth2.Endpoint, opts ...GoogleOption) *GoogleFlow {
	o := googleOptions{maxPending: DefaultMaxPending}
	for _, opt := range opts {
		opt(&o)
	}

	return &GoogleFlow{
		oauth: &oauth2.Config{
			ClientID:    clientID,
			RedirectURL: redirectURL,
			Endpoint:    endpoint,
			Scopes:      GoogleScopes,
		},
		pending: ttlcache.New[string, Completion](
			ttlcache.WithTTL[string, Completion](ttl),
			ttlcache.WithDisableTouchOnHit[string, Completion](),
			ttlcache.WithCapacity[string, Completion](o.maxPending),
		),
	}
}

// Start launches the janitor that evicts expired states. Expired states are
// rejected by Finish whether or not the janitor runs.
func (f *GoogleFlow) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return
	}
	f.running = true
	go f.pending.Start()
}

// Stop ends the janitor. It is a no-op when Start was not called.
func (f *GoogleFlow) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.running {
		return
	}
	f.running = false
	f.pending.Stop()
}

// StartLogin parks complete under a fresh state and returns the Google URL.
func (f *GoogleFlow) StartLogin(_ context.Context, complete Completion) (LoginStart, error) {
	state := uuid.NewString()
	f.pending.Set(state, complete, ttlcache.DefaultTTL)

	url := f.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return LoginStart{RedirectURL: url, State: state}, nil
}

// Finish consumes the completion registered for state and runs it with code.
// A state is honoured once; replays and expired states are rejected.
func (f *GoogleFlow) Finish(ctx context.Context, state, code string) error {
	item, found := f.pending.GetAndDelete(state)
	if !found || item.IsExpired() {
		return domain.ErrUnknownLoginState
	}
	item.Value()(ctx, code)
	return nil
}

// Pending reports how many logins are waiting for their callback.
func (f *GoogleFlow) Pending() int {
	return f.pending.Len()
}
