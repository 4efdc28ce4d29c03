// Package services contains application services for the ragctl client.
// This file defines the session service: the authentication state machine
// owning the bearer token and the verified user identity.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/ragctl/internal/client/models"
	"github.com/dmitrijs2005/ragctl/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/ragctl/internal/logging"
)

// AuthAPI is the slice of the backend surface the session service needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// SessionService owns the token/user pair for the whole client.
//
// Contract:
//   - Initialize: restore a persisted session (or demo auto-login); swallows
//     all failures into the unauthenticated state.
//   - Login: authenticate, persist the token, verify the user. Failures are
//     propagated unchanged and leave the prior state intact.
//   - Logout: always succeeds client-side; the server call is best-effort.
//   - Token / CurrentUser / IsAuthenticated: pure reads.
//
// Token and user are only ever set or cleared together; IsAuthenticated is
// never true with just one of the two populated.
type SessionService interface {
	Initialize(ctx context.Context)
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context)

	// Invalidate drops the in-memory token/user pair. Meant for the API
	// layer's 401 hook, where the persisted token is already gone.
	Invalidate()

	Token() string
	CurrentUser() *models.User
	IsAuthenticated() bool
}

// DemoCredentials is the fixed credential pair used for unattended demo
// auto-login. Enabled is false unless the deployment explicitly opts in.
type DemoCredentials struct {
	Enabled  bool
	Username string
	Password string
}

// sessionService is the concrete SessionService backed by the remote auth API
// and the durable token store.
//
// The mutex guards the in-memory pair only. Two calls racing against the same
// state resolve in completion order ("last call to resolve wins"); there is
// no request cancellation or generation counting.
type sessionService struct {
	client AuthAPI
	store  tokens.Store
	demo   DemoCredentials
	log    logging.Logger

	mu    sync.Mutex
	token string
	user  *models.User
}

// NewSessionService constructs a SessionService bound to the given API
// client and token store.
func NewSessionService(client AuthAPI, store tokens.Store, demo DemoCredentials, log logging.Logger) SessionService {
	return &sessionService{client: client, store: store, demo: demo, log: log}
}

// Initialize restores the session at process start. With a persisted token it
// verifies the token against the current-user endpoint; any failure discards
// the token. With no token it either stays unauthenticated or, when demo
// auto-login is enabled, logs in with the fixed demo pair. Callers should
// not proceed past their loading state until this returns.
func (s *sessionService) Initialize(ctx context.Context) {
	tok, err := s.store.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted token", "error", err)
		return
	}

	if tok == "" {
		if !s.demo.Enabled {
			return
		}
		if err := s.Login(ctx, s.demo.Username, s.demo.Password); err != nil {
			s.log.Warn(ctx, "demo auto-login failed", "error", err)
		}
		return
	}

	// Verify the restored token. The API transport reads it from the store,
	// so no in-memory state is needed for the call itself.
	user, err := s.client.Me(ctx)
	if err != nil {
		// Invalid, expired or unverifiable: discard rather than keep a token
		// we cannot vouch for. A 401 has already removed it transport-side;
		// clearing again is harmless.
		_ = s.store.Clear(ctx)
		s.setSession("", nil)
		s.log.Warn(ctx, "persisted token rejected, starting unauthenticated", "error", err)
		return
	}

	s.setSession(tok, user)
	s.log.Info(ctx, "session restored", "username", user.Username)
}

// Login exchanges credentials for a token, persists it, then immediately
// verifies it via the current-user endpoint. A login failure changes nothing.
// A verification failure after a successful login fails closed: the fresh
// token is discarded and the error returned.
func (s *sessionService) Login(ctx context.Context, username, password string) error {
	tok, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := s.store.Set(ctx, tok); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		_ = s.store.Clear(ctx)
		s.setSession("", nil)
		return fmt.Errorf("verify session: %w", err)
	}

	s.setSession(tok, user)
	return nil
}

// Logout clears the session client-side first, then makes a best-effort
// server logout whose outcome is never surfaced. It cannot fail.
func (s *sessionService) Logout(ctx context.Context) {
	s.setSession("", nil)
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear persisted token", "error", err)
	}

	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "server-side logout failed", "error", err)
	}
}

// Invalidate reacts to a token rejection observed by the transport. Only the
// in-memory pair needs dropping; the transport has cleared the store already.
func (s *sessionService) Invalidate() {
	s.setSession("", nil)
}

func (s *sessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *sessionService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *sessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

func (s *sessionService) setSession(token string, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}
