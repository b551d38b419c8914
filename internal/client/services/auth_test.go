package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MinhAlfred/orchidstore/internal/client/api"
	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/client/nav"
	"github.com/MinhAlfred/orchidstore/internal/client/query"
	"github.com/MinhAlfred/orchidstore/internal/client/storage"
)

type fakeSession struct {
	user *models.Account
}

func (f *fakeSession) SetUser(user *models.Account) { f.user = user }

func newAuthFixture() (*AuthService, *fakeTransport, *fakeStore, *fakeSession, *fakeUI, *query.Cache) {
	tr := newFakeTransport()
	store := newFakeStore()
	session := &fakeSession{}
	ui := &fakeUI{}
	cache := query.NewCache()
	svc := NewAuthService(tr, store, session, cache, ui, testLogger())
	return svc, tr, store, session, ui, cache
}

func TestLogin_AdminLandsOnManagementList(t *testing.T) {
	ctx := context.Background()
	routes := captureNav(t)
	svc, tr, store, session, ui, _ := newAuthFixture()
	tr.on(http.MethodPost, "/accounts/login", func(_, out any) error {
		return respond(out, models.LoginResult{
			User:  &models.Account{ID: 1, Name: "Ada", RoleName: models.RoleAdmin},
			Token: "jwt-token",
		})
	})

	require.NoError(t, svc.Login(ctx, "ada@example.com", "secret"))

	require.Equal(t, "jwt-token", store.m[storage.KeyToken])
	require.NotNil(t, session.user)
	require.Equal(t, models.RoleAdmin, session.user.RoleName)
	require.Equal(t, []string{"Login successful!"}, ui.successes)
	require.Equal(t, []string{nav.RouteOrchidList}, *routes)
}

func TestLogin_CustomerLandsOnStorefront(t *testing.T) {
	ctx := context.Background()
	routes := captureNav(t)
	svc, tr, _, _, _, _ := newAuthFixture()
	tr.on(http.MethodPost, "/accounts/login", func(_, out any) error {
		return respond(out, models.LoginResult{
			User:  &models.Account{ID: 2, Name: "Bob", RoleName: models.RoleUser},
			Token: "jwt-token",
		})
	})

	require.NoError(t, svc.Login(ctx, "bob@example.com", "secret"))
	require.Equal(t, []string{nav.RouteHome}, *routes)
}

func TestCurrentUser_CachedUntilNextLogin(t *testing.T) {
	ctx := context.Background()
	captureNav(t)
	svc, tr, _, _, _, _ := newAuthFixture()
	tr.on(http.MethodGet, "/accounts/me", func(_, out any) error {
		return respond(out, models.Account{ID: 1, Name: "Ada", RoleName: models.RoleAdmin})
	})
	tr.on(http.MethodPost, "/accounts/login", func(_, out any) error {
		return respond(out, models.LoginResult{User: &models.Account{ID: 2}, Token: "t"})
	})

	first, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	second, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, tr.calls["GET /accounts/me"])

	// A fresh login drops the cached record.
	require.NoError(t, svc.Login(ctx, "a@b.c", "p"))

	_, err = svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, tr.calls["GET /accounts/me"])
}

func TestLogin_RejectedCredentialsShowReason(t *testing.T) {
	ctx := context.Background()
	routes := captureNav(t)
	svc, tr, store, session, ui, _ := newAuthFixture()
	tr.on(http.MethodPost, "/accounts/login", func(_, _ any) error {
		return &api.StatusError{Status: 400, Reason: "Invalid email or password", Method: "POST", Path: "/accounts/login"}
	})

	err := svc.Login(ctx, "ada@example.com", "wrong")
	require.Error(t, err)
	require.Equal(t, []string{"Invalid email or password"}, ui.errors)
	require.Empty(t, store.m)
	require.Nil(t, session.user)
	require.Empty(t, *routes)
}

func TestLogin_TokenPersistFailureAbortsSession(t *testing.T) {
	ctx := context.Background()
	routes := captureNav(t)
	svc, tr, store, session, ui, _ := newAuthFixture()
	store.setErr = errors.New("disk full")
	tr.on(http.MethodPost, "/accounts/login", func(_, out any) error {
		return respond(out, models.LoginResult{User: &models.Account{ID: 1}, Token: "t"})
	})

	err := svc.Login(ctx, "a@b.c", "p")
	require.Error(t, err)
	require.Nil(t, session.user)
	require.Empty(t, *routes)
	require.Len(t, ui.errors, 1)
}

func TestRegister_PostsToRegisterEndpointAndSendsUserToLogin(t *testing.T) {
	ctx := context.Background()
	routes := captureNav(t)
	svc, tr, _, _, ui, _ := newAuthFixture()
	tr.on(http.MethodPost, "/accounts/register", func(_, _ any) error { return nil })

	require.NoError(t, svc.Register(ctx, models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret"}))

	require.Equal(t, []string{"Registration successful!"}, ui.successes)
	require.Equal(t, []string{nav.RouteLogin}, *routes)
	require.Equal(t, 1, tr.calls["POST /accounts/register"])
}

func TestRegister_FailureStaysPut(t *testing.T) {
	ctx := context.Background()
	routes := captureNav(t)
	svc, tr, _, _, ui, _ := newAuthFixture()
	tr.on(http.MethodPost, "/accounts/register", func(_, _ any) error {
		return &api.StatusError{Status: 400, Reason: "Email already in use", Method: "POST", Path: "/accounts/register"}
	})

	err := svc.Register(ctx, models.RegisterRequest{Email: "ada@example.com"})
	require.Error(t, err)
	require.Equal(t, []string{"Email already in use"}, ui.errors)
	require.Empty(t, *routes)
}
