// Package session owns the authenticated-session state: the bearer token,
// the resolved user profile, and their lifecycle across login, register,
// logout, restart, and backend-reported invalidation.
//
// The token is the one piece of cross-view shared state in the client and is
// only ever written here; views read it through accessors and the gateway
// reads it through a TokenSource.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kickitup/internal/api"
	"kickitup/internal/logging"
	"kickitup/internal/models"
	"kickitup/internal/store"
)

// Store holds the current session. Invariant: user is non-nil only while a
// token is held and a profile fetch for that exact token has succeeded.
type Store struct {
	api  *api.Client
	meta *store.Metadata
	log  logging.Logger

	mu      sync.Mutex
	token   string
	user    *models.Profile
	loading bool
}

// New wires a session store to the gateway and the local metadata
// repository. The gateway is given the token accessor and the 401
// invalidation hook here, so no other component ever touches the credential.
func New(client *api.Client, meta *store.Metadata, log logging.Logger) *Store {
	s := &Store{api: client, meta: meta, log: log, loading: true}
	client.SetTokenSource(s.Token)
	client.OnUnauthorized(s.invalidate)
	return s
}

// Token returns the active bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the resolved profile, or nil when not (fully) logged in.
func (s *Store) User() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// LoggedIn reports whether a validated session is active.
func (s *Store) LoggedIn() bool {
	return s.User() != nil
}

// Loading reports whether the initial session restore is still running.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Initialize restores a persisted session. If a token is on disk it performs
// exactly one profile fetch; any failure (network or rejection) degrades to
// logged-out rather than blocking the application. Always terminates with
// Loading() == false.
func (s *Store) Initialize(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	raw, err := s.meta.Get(ctx, store.KeyToken)
	if err != nil {
		s.log.Warn(ctx, "session restore failed", "err", err)
		return
	}
	if len(raw) == 0 {
		return
	}

	token := string(raw)
	if expiry, ok := TokenExpiry(token); ok && expiry.Before(time.Now()) {
		// Provably stale; skip the round trip.
		_ = s.meta.Delete(ctx, store.KeyToken)
		return
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.fetchProfile(ctx, token); err != nil {
		s.log.Info(ctx, "persisted token rejected, starting logged out", "err", err)
	}
}

// Login authenticates, persists the issued token, and resolves the profile
// before returning. Invalid credentials propagate to the caller as an error
// wrapping api.ErrUnauthorized.
func (s *Store) Login(ctx context.Context, username, password string) error {
	req := api.LoginRequest{Username: username, Password: password}
	if err := req.Validate(); err != nil {
		return err
	}

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return err
	}
	return s.adopt(ctx, resp.Token)
}

// Register creates an account and logs the new user in, with the same
// contract as Login.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return err
	}
	return s.adopt(ctx, resp.Token)
}

// Logout drops the persisted and in-memory credential. Safe to call when
// already logged out.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	return s.meta.Delete(ctx, store.KeyToken)
}

// RefreshProfile re-fetches the profile for the current token, e.g. after a
// profile update, so the cached copy is replaced wholesale from the
// authoritative response.
func (s *Store) RefreshProfile(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return api.ErrUnauthorized
	}
	return s.fetchProfile(ctx, token)
}

// adopt installs a freshly issued token and resolves its profile.
func (s *Store) adopt(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("auth response carried no token")
	}
	if err := s.meta.Set(ctx, store.KeyToken, []byte(token)); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()

	return s.fetchProfile(ctx, token)
}

// fetchProfile loads the profile for the given token. The result is applied
// only while that token is still the active one: a slow fetch issued for an
// old token must never overwrite a newer session (last-write-wins by token
// identity, not completion order).
func (s *Store) fetchProfile(ctx context.Context, token string) error {
	p, err := s.api.Profile(ctx)

	s.mu.Lock()
	current := s.token == token
	if current {
		if err != nil {
			s.token = ""
			s.user = nil
		} else {
			s.user = &p
		}
	}
	s.mu.Unlock()

	if current && err != nil {
		_ = s.meta.Delete(ctx, store.KeyToken)
	}
	return err
}

// invalidate is the gateway's 401 hook: the backend has declared the current
// token dead, so drop it everywhere. Runs at most once per token (the
// gateway debounces).
func (s *Store) invalidate() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.meta.Delete(ctx, store.KeyToken); err != nil {
		s.log.Warn(ctx, "clearing persisted token failed", "err", err)
	}
}
