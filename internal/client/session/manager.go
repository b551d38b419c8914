// Package session owns the in-memory authentication state: the current user,
// the derived authorization predicates, and logout semantics. The durable
// token lives in the key-value store; the user record lives only here. The
// two are linked by one invariant: a user is present only while a token is
// present and the current-user fetch for it succeeded at least once.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/client/nav"
	"github.com/MinhAlfred/orchidstore/internal/client/storage"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// API is the slice of the transport the manager needs: the current-user
// fetch.
type API interface {
	Get(ctx context.Context, path string, out any) error
}

// Notifier delivers user-facing notifications.
type Notifier interface {
	Success(msg string)
}

type Manager struct {
	store storage.Store
	api   API
	ui    Notifier
	log   logging.Logger

	mu    sync.RWMutex
	state State
	user  *models.Account
}

func NewManager(store storage.Store, api API, ui Notifier, log logging.Logger) *Manager {
	return &Manager{store: store, api: api, ui: ui, log: log, state: StateAnonymous}
}

// Init resolves the stored token, if any, into a user record. A stored token
// that cannot be resolved (expired locally, or rejected by the server) is
// deleted; the absence of a token leaves the store untouched.
func (m *Manager) Init(ctx context.Context) {
	token, err := m.store.Get(ctx, storage.KeyToken)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.Error(ctx, "failed to read token from store", "error", err)
		}
		m.setAnonymous()
		return
	}

	m.setState(StateAuthenticating)

	if tokenExpired(token) {
		m.log.Warn(ctx, "stored token already expired, skipping current-user fetch")
		m.clearToken(ctx)
		m.setAnonymous()
		return
	}

	var user models.Account
	if err := m.api.Get(ctx, "/accounts/me", &user); err != nil {
		m.log.Error(ctx, "current user fetch failed", "error", err)
		m.clearToken(ctx)
		m.setAnonymous()
		return
	}

	m.mu.Lock()
	m.user = &user
	m.state = StateAuthenticated
	m.mu.Unlock()
}

// SetUser installs the user record handed back by a successful login, so the
// session reflects the freshly issued token without a redundant current-user
// fetch.
func (m *Manager) SetUser(user *models.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	if user != nil {
		m.state = StateAuthenticated
	}
}

// Logout clears the token from the store and the user from memory, notifies
// the user, and navigates to the login screen.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, storage.KeyToken); err != nil {
		return err
	}

	m.mu.Lock()
	m.user = nil
	m.state = StateAnonymous
	m.mu.Unlock()

	m.ui.Success("Logged out successfully")
	nav.NavigateTo(nav.RouteLogin)
	return nil
}

// Sync reconciles the in-memory user with the durable token after an
// external store change: a token deleted by another writer (or by the
// transport's auth-failure teardown) drops the user immediately.
func (m *Manager) Sync(ctx context.Context) {
	if m.IsAuthenticated(ctx) {
		return
	}
	m.setAnonymous()
}

// IsAuthenticated reports whether a token is present in the durable store.
// It deliberately checks storage rather than the in-memory user: a token can
// exist before the user record has resolved.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	_, err := m.store.Get(ctx, storage.KeyToken)
	return err == nil
}

// IsAdmin reports whether the resolved user holds the Admin role.
func (m *Manager) IsAdmin() bool {
	u := m.User()
	return u != nil && u.RoleName == models.RoleAdmin
}

func (m *Manager) User() *models.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func (m *Manager) setAnonymous() {
	m.mu.Lock()
	m.user = nil
	m.state = StateAnonymous
	m.mu.Unlock()
}

func (m *Manager) clearToken(ctx context.Context) {
	if err := m.store.Delete(ctx, storage.KeyToken); err != nil {
		m.log.Error(ctx, "failed to clear token", "error", err)
	}
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job. Tokens without a readable exp
// claim are passed through to the server to decide.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
