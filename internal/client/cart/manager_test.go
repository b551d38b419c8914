package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/client/storage"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

// ---- fakes ----

type fakeStore struct {
	m      map[string]string
	setErr error
}

func newFakeStore() *fakeStore { return &fakeStore{m: map[string]string{}} }

func (s *fakeStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.m[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.m[key] = value
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error { delete(s.m, key); return nil }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestManager(t *testing.T) (*Manager, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	m, err := NewManager(context.Background(), store, storage.NewNotifier(), testLogger())
	require.NoError(t, err)
	return m, store
}

func orchid(id int, price float64) models.Orchid {
	return models.Orchid{ID: id, Name: "Orchid", Price: price, IsAvailable: true}
}

// storedLines decodes what the store currently holds under the cart key.
func storedLines(t *testing.T, s *fakeStore) []models.CartLine {
	t.Helper()
	raw, err := s.Get(context.Background(), storage.KeyCart)
	require.NoError(t, err)
	var lines []models.CartLine
	require.NoError(t, json.Unmarshal([]byte(raw), &lines))
	return lines
}

// ---- tests ----

func TestAdd_MergesByProductID(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	require.NoError(t, m.Add(ctx, orchid(1, 10), 2))
	require.NoError(t, m.Add(ctx, orchid(1, 10), 3))

	lines := m.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 5, lines[0].Quantity)
	require.Equal(t, 1, m.LineCount())
	require.Equal(t, 5, m.TotalQuantity())
}

func TestAdd_DefaultsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	require.NoError(t, m.Add(ctx, orchid(1, 10), 0))
	require.Equal(t, 1, m.TotalQuantity())
}

func TestTotals_AlwaysDerivedFromLines(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	require.NoError(t, m.Add(ctx, orchid(1, 10), 2))
	require.NoError(t, m.Add(ctx, orchid(2, 5.5), 1))
	require.NoError(t, m.SetQuantity(ctx, 2, 4))
	require.NoError(t, m.Remove(ctx, 1))

	lines := m.Lines()
	wantQty := 0
	for _, l := range lines {
		wantQty += l.Quantity
	}
	require.Equal(t, wantQty, m.TotalQuantity())
	require.Equal(t, len(lines), m.LineCount())
	require.InDelta(t, 22.0, m.TotalAmount(), 1e-9)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	require.NoError(t, m.Add(ctx, orchid(1, 10), 2))
	require.NoError(t, m.SetQuantity(ctx, 1, 0))

	require.Zero(t, m.LineCount())
}

func TestSetQuantity_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	require.NoError(t, m.Add(ctx, orchid(1, 10), 2))
	require.NoError(t, m.SetQuantity(ctx, 99, 5))

	require.Equal(t, 1, m.LineCount())
	require.Equal(t, 2, m.TotalQuantity())
}

func TestRemove_AbsentLineIsNoOp(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	require.NoError(t, m.Remove(ctx, 42))
	require.Zero(t, m.LineCount())
}

func TestMutations_RoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)

	require.NoError(t, m.Add(ctx, orchid(1, 10), 2))
	require.Equal(t, m.Lines(), storedLines(t, store))

	require.NoError(t, m.Add(ctx, orchid(2, 3), 1))
	require.Equal(t, m.Lines(), storedLines(t, store))

	require.NoError(t, m.SetQuantity(ctx, 1, 7))
	require.Equal(t, m.Lines(), storedLines(t, store))

	require.NoError(t, m.Clear(ctx))
	require.Empty(t, m.Lines())
	require.Empty(t, storedLines(t, store))
}

func TestMutation_BroadcastsChange(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	notifier := storage.NewNotifier()
	ch := notifier.Subscribe()

	m, err := NewManager(ctx, store, notifier, testLogger())
	require.NoError(t, err)

	require.NoError(t, m.Add(ctx, orchid(1, 10), 1))

	select {
	case <-ch:
	default:
		t.Fatal("expected a change broadcast after mutation")
	}
}

func TestPersistFailure_LeavesMemoryUnchanged(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)

	require.NoError(t, m.Add(ctx, orchid(1, 10), 2))

	store.setErr = errors.New("disk full")
	require.Error(t, m.Add(ctx, orchid(2, 5), 1))

	// The failed mutation must not be visible.
	require.Equal(t, 1, m.LineCount())
	require.Equal(t, 2, m.TotalQuantity())
}

func TestReload_PicksUpExternalWrite(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)

	external := []models.CartLine{{ProductID: 9, Name: "Cattleya", Price: 12, Quantity: 3}}
	raw, err := json.Marshal(external)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyCart, string(raw)))

	require.NoError(t, m.Reload(ctx))
	require.Equal(t, external, m.Lines())
}

func TestNewManager_CorruptCartFails(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	require.NoError(t, store.Set(ctx, storage.KeyCart, "{not json"))

	_, err := NewManager(ctx, store, storage.NewNotifier(), testLogger())
	require.Error(t, err)
}
