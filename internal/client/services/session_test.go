package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ragctl/internal/client/api"
	"github.com/dmitrijs2005/ragctl/internal/client/models"
	"github.com/dmitrijs2005/ragctl/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/ragctl/internal/logging"
)

type fakeAuthAPI struct {
	loginToken string
	loginErr   error
	loginUser  string
	loginPass  string
	loginCalls int

	meUser  *models.User
	meErr   error
	meCalls int

	logoutErr   error
	logoutCalls int
}

func (f *fakeAuthAPI) Login(_ context.Context, username, password string) (string, error) {
	f.loginCalls++
	f.loginUser, f.loginPass = username, password
	return f.loginToken, f.loginErr
}

func (f *fakeAuthAPI) Me(context.Context) (*models.User, error) {
	f.meCalls++
	return f.meUser, f.meErr
}

func (f *fakeAuthAPI) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func alice() *models.User {
	return &models.User{ID: 1, Username: "alice", Email: "a@example.org", IsActive: true}
}

func newSession(f *fakeAuthAPI, store tokens.Store, demo DemoCredentials) SessionService {
	return NewSessionService(f, store, demo, testLogger())
}

func TestLogin_Success(t *testing.T) {
	f := &fakeAuthAPI{loginToken: "tok-1", meUser: alice()}
	store := tokens.NewMemoryStore()
	s := newSession(f, store, DemoCredentials{})
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "alice", "s3cret"))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "alice", s.CurrentUser().Username)
	assert.Equal(t, "tok-1", s.Token())
	assert.Equal(t, "alice", f.loginUser)
	assert.Equal(t, "s3cret", f.loginPass)

	persisted, _ := store.Get(ctx)
	assert.Equal(t, "tok-1", persisted, "token must be persisted on login")
}

func TestLogin_FailureLeavesStateUnchanged(t *testing.T) {
	f := &fakeAuthAPI{loginErr: errors.New("incorrect username or password")}
	store := tokens.NewMemoryStore()
	s := newSession(f, store, DemoCredentials{})
	ctx := context.Background()

	err := s.Login(ctx, "alice", "wrong")
	require.Error(t, err)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	persisted, _ := store.Get(ctx)
	assert.Empty(t, persisted, "no token may be stored on a failed login")
}

func TestLogin_VerificationFailureFailsClosed(t *testing.T) {
	f := &fakeAuthAPI{loginToken: "tok-1", meErr: errors.New("backend hiccup")}
	store := tokens.NewMemoryStore()
	s := newSession(f, store, DemoCredentials{})
	ctx := context.Background()

	err := s.Login(ctx, "alice", "s3cret")
	require.Error(t, err)

	assert.False(t, s.IsAuthenticated())
	persisted, _ := store.Get(ctx)
	assert.Empty(t, persisted, "unverifiable token must be discarded")
}

func TestLogout_ClearsEverything(t *testing.T) {
	f := &fakeAuthAPI{loginToken: "tok-1", meUser: alice()}
	store := tokens.NewMemoryStore()
	s := newSession(f, store, DemoCredentials{})
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "alice", "s3cret"))
	s.Logout(ctx)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.CurrentUser())
	persisted, _ := store.Get(ctx)
	assert.Empty(t, persisted)
	assert.Equal(t, 1, f.logoutCalls)
}

func TestLogout_ServerFailureIsSwallowed(t *testing.T) {
	f := &fakeAuthAPI{loginToken: "tok-1", meUser: alice(), logoutErr: api.ErrUnavailable}
	store := tokens.NewMemoryStore()
	s := newSession(f, store, DemoCredentials{})
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "alice", "s3cret"))
	s.Logout(ctx) // must complete client-side despite the unreachable server

	assert.False(t, s.IsAuthenticated())
	persisted, _ := store.Get(ctx)
	assert.Empty(t, persisted)
}

func TestInitialize_RestoresPersistedSession(t *testing.T) {
	f := &fakeAuthAPI{meUser: alice()}
	store := tokens.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "tok-prev"))

	s := newSession(f, store, DemoCredentials{})
	s.Initialize(ctx)

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "alice", s.CurrentUser().Username)
	assert.Equal(t, "tok-prev", s.Token())
	assert.Zero(t, f.loginCalls, "restore must not require new credentials")
}

func TestInitialize_RejectedTokenIsRemoved(t *testing.T) {
	f := &fakeAuthAPI{meErr: api.ErrUnauthorized}
	store := tokens.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "abc123"))

	s := newSession(f, store, DemoCredentials{})
	s.Initialize(ctx)

	assert.False(t, s.IsAuthenticated())
	persisted, _ := store.Get(ctx)
	assert.Empty(t, persisted, "rejected token must be removed from storage")
}

func TestInitialize_NoTokenStaysUnauthenticated(t *testing.T) {
	f := &fakeAuthAPI{}
	s := newSession(f, tokens.NewMemoryStore(), DemoCredentials{})

	s.Initialize(context.Background())

	assert.False(t, s.IsAuthenticated())
	assert.Zero(t, f.loginCalls)
	assert.Zero(t, f.meCalls)
}

func TestInitialize_DemoAutoLogin(t *testing.T) {
	f := &fakeAuthAPI{loginToken: "demo-tok", meUser: &models.User{ID: 2, Username: "demo", IsActive: true}}
	store := tokens.NewMemoryStore()
	demo := DemoCredentials{Enabled: true, Username: "demo", Password: "demo12345"}

	s := newSession(f, store, demo)
	s.Initialize(context.Background())

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "demo", s.CurrentUser().Username)
	assert.Equal(t, "demo", f.loginUser)
	assert.Equal(t, "demo12345", f.loginPass)
}

func TestInitialize_DemoLoginFailureIsSwallowed(t *testing.T) {
	f := &fakeAuthAPI{loginErr: api.ErrUnavailable}
	demo := DemoCredentials{Enabled: true, Username: "demo", Password: "demo12345"}

	s := newSession(f, tokens.NewMemoryStore(), demo)
	s.Initialize(context.Background())

	assert.False(t, s.IsAuthenticated())
}

func TestInitialize_DemoSkippedWhenTokenPersisted(t *testing.T) {
	f := &fakeAuthAPI{meUser: alice()}
	store := tokens.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "tok-prev"))

	demo := DemoCredentials{Enabled: true, Username: "demo", Password: "demo12345"}
	s := newSession(f, store, demo)
	s.Initialize(ctx)

	assert.True(t, s.IsAuthenticated())
	assert.Zero(t, f.loginCalls, "persisted token takes precedence over demo login")
}

func TestInvalidate_DropsInMemoryPair(t *testing.T) {
	f := &fakeAuthAPI{loginToken: "tok-1", meUser: alice()}
	store := tokens.NewMemoryStore()
	s := newSession(f, store, DemoCredentials{})
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "alice", "s3cret"))
	require.True(t, s.IsAuthenticated())

	s.Invalidate()

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.CurrentUser())
}
