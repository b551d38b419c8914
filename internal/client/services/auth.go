package services

import (
	"context"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/client/nav"
	"github.com/MinhAlfred/orchidstore/internal/client/query"
	"github.com/MinhAlfred/orchidstore/internal/client/storage"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

// Session is the slice of the session manager the auth service drives after
// a successful login.
type Session interface {
	SetUser(user *models.Account)
}

type AuthService struct {
	api     Transport
	store   storage.Store
	session Session
	cache   *query.Cache
	ui      Notifier
	log     logging.Logger
}

func NewAuthService(api Transport, store storage.Store, session Session, cache *query.Cache, ui Notifier, log logging.Logger) *AuthService {
	return &AuthService{api: api, store: store, session: session, cache: cache, ui: ui, log: log}
}

// Login exchanges credentials for a token, persists the token, installs the
// returned user into the session, and navigates by role: admins land on the
// orchid management list, everyone else on the storefront.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	var result models.LoginResult
	req := models.LoginRequest{Email: email, Password: password}
	if err := s.api.Post(ctx, "/accounts/login", req, &result); err != nil {
		s.ui.Error(failureMessage(err, "Login failed"))
		return err
	}

	if err := s.store.Set(ctx, storage.KeyToken, result.Token); err != nil {
		s.log.Error(ctx, "failed to persist token", "error", err)
		s.ui.Error("Login failed")
		return err
	}

	s.session.SetUser(result.User)
	invalidate(s.cache, kindCurrentUser)
	s.ui.Success("Login successful!")

	if result.User != nil && result.User.RoleName == models.RoleAdmin {
		nav.NavigateTo(nav.RouteOrchidList)
	} else {
		nav.NavigateTo(nav.RouteHome)
	}
	return nil
}

// Register creates a new account and sends the user to the login screen.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := s.api.Post(ctx, "/accounts/register", req, nil); err != nil {
		s.ui.Error(failureMessage(err, "Registration failed"))
		return err
	}
	s.ui.Success("Registration successful!")
	nav.NavigateTo(nav.RouteLogin)
	return nil
}

// CurrentUser returns the authenticated account. The result is cached until
// the next login invalidates it.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.Account, error) {
	user, err := query.GetOrFetch(ctx, s.cache, query.Key(kindCurrentUser), func(ctx context.Context) (*models.Account, error) {
		var out models.Account
		if err := s.api.Get(ctx, "/accounts/me", &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch current user"))
		return nil, err
	}
	return user, nil
}
