package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MinhAlfred/orchidstore/internal/client/nav"
	"github.com/MinhAlfred/orchidstore/internal/client/storage"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// memStore is an in-memory storage.Store for transport tests.
type memStore struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemStore() *memStore { return &memStore{m: make(map[string]string)} }

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// failingRT simulates the no-response failure class: every RoundTrip returns
// a transport-level error and counts attempts.
type failingRT struct {
	mu       sync.Mutex
	attempts int
}

func (rt *failingRT) RoundTrip(*http.Request) (*http.Response, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.attempts++
	return nil, errors.New("connection refused")
}

func newTestClient(baseURL string, store storage.Store) *Client {
	return New(baseURL, 0, store, storage.NewNotifier(), testLogger())
}

// ---- tests ----

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message":"ok","data":[]}`))
	}))
	defer srv.Close()

	store := newMemStore()
	require.NoError(t, store.Set(context.Background(), storage.KeyToken, "tok123"))

	c := newTestClient(srv.URL, store)
	var out []struct{}
	require.NoError(t, c.Get(context.Background(), "/orchids", &out))
	require.Equal(t, "Bearer tok123", gotAuth)
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, newMemStore())
	require.NoError(t, c.Get(context.Background(), "/orchids", nil))
	require.Empty(t, gotAuth)
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok","data":{"id":7,"name":"Phalaenopsis"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, newMemStore())
	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, c.Get(context.Background(), "/orchids/7", &out))
	require.Equal(t, 7, out.ID)
	require.Equal(t, "Phalaenopsis", out.Name)
}

func TestClient_UnauthorizedClearsSessionAndRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"reason":"token expired"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, store.Set(ctx, storage.KeyToken, "stale"))
	require.NoError(t, store.Set(ctx, storage.KeyUser, "legacy"))

	notifier := storage.NewNotifier()
	changes := notifier.Subscribe()

	var navigated string
	nav.SetNavigator(func(path string) { navigated = path })
	t.Cleanup(func() { nav.SetNavigator(nil) })

	c := New(srv.URL, 0, store, notifier, testLogger())
	err := c.Get(ctx, "/orders", nil)

	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, "token expired", Reason(err))

	_, getErr := store.Get(ctx, storage.KeyToken)
	require.ErrorIs(t, getErr, storage.ErrNotFound)
	_, getErr = store.Get(ctx, storage.KeyUser)
	require.ErrorIs(t, getErr, storage.ErrNotFound)

	select {
	case <-changes:
	default:
		t.Fatal("expected a store change broadcast")
	}
	require.Equal(t, nav.RouteLogin, navigated)
}

func TestClient_ServerErrorPropagatesWithoutStateChange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"reason":"boom"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, store.Set(ctx, storage.KeyToken, "tok"))

	c := newTestClient(srv.URL, store)
	err := c.Get(ctx, "/orchids", nil)

	require.ErrorIs(t, err, ErrServer)
	require.Equal(t, "boom", Reason(err))

	// Token survives non-auth failures.
	v, getErr := store.Get(ctx, storage.KeyToken)
	require.NoError(t, getErr)
	require.Equal(t, "tok", v)
}

func TestClient_GetRetriedExactlyOnceOnNetworkFailure(t *testing.T) {
	rt := &failingRT{}
	c := newTestClient("http://unreachable.invalid", newMemStore())
	c.httpc.Transport = rt

	err := c.Get(context.Background(), "/orchids", nil)

	require.ErrorIs(t, err, ErrUnavailable)
	require.Equal(t, 2, rt.attempts) // initial attempt + exactly one retry
}

func TestClient_PostNeverRetriedOnNetworkFailure(t *testing.T) {
	rt := &failingRT{}
	c := newTestClient("http://unreachable.invalid", newMemStore())
	c.httpc.Transport = rt

	err := c.Post(context.Background(), "/orders", map[string]any{"x": 1}, nil)

	require.ErrorIs(t, err, ErrUnavailable)
	require.Equal(t, 1, rt.attempts)
}

func TestClient_RequestSetupErrorNotRetried(t *testing.T) {
	c := newTestClient("http://host", newMemStore())
	err := c.Get(context.Background(), "/bad path\n", nil)
	require.ErrorIs(t, err, ErrRequestSetup)
}
