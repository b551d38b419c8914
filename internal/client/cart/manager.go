// Package cart holds the shopping cart for the running client. The line
// sequence lives in memory and is mirrored to the key-value store on every
// mutation; the store copy is the cross-client shared state (last writer
// wins, no merging). After each successful persist the manager broadcasts a
// payloadless change notification so other consumers re-hydrate.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/client/storage"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

type Manager struct {
	store    storage.Store
	notifier *storage.Notifier
	log      logging.Logger

	mu    sync.Mutex
	lines []models.CartLine
}

// NewManager hydrates the cart from the store. A missing cart key starts an
// empty cart; a corrupt value is an error.
func NewManager(ctx context.Context, store storage.Store, notifier *storage.Notifier, log logging.Logger) (*Manager, error) {
	m := &Manager{store: store, notifier: notifier, log: log}
	if err := m.Reload(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Reload replaces the in-memory lines with the store's current value. Called
// at construction and whenever a store-change notification arrives.
func (m *Manager) Reload(ctx context.Context) error {
	raw, err := m.store.Get(ctx, storage.KeyCart)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			m.mu.Lock()
			m.lines = nil
			m.mu.Unlock()
			return nil
		}
		return fmt.Errorf("failed to load cart: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return fmt.Errorf("failed to decode cart: %w", err)
	}

	m.mu.Lock()
	m.lines = lines
	m.mu.Unlock()
	return nil
}

// Add merges the product into the cart: an existing line's quantity grows by
// quantity, otherwise a new line is appended. Quantities below one count as
// one.
func (m *Manager) Add(ctx context.Context, product models.Orchid, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	return m.mutate(ctx, func(lines []models.CartLine) []models.CartLine {
		for i := range lines {
			if lines[i].ProductID == product.ID {
				lines[i].Quantity += quantity
				return lines
			}
		}
		return append(lines, models.NewCartLine(product, quantity))
	})
}

// Remove drops the line for productID. Removing an absent line is a no-op.
func (m *Manager) Remove(ctx context.Context, productID int) error {
	return m.mutate(ctx, func(lines []models.CartLine) []models.CartLine {
		kept := lines[:0]
		for _, l := range lines {
			if l.ProductID != productID {
				kept = append(kept, l)
			}
		}
		return kept
	})
}

// SetQuantity sets the line's quantity exactly. A quantity of zero or less
// removes the line; an unknown productID is a no-op.
func (m *Manager) SetQuantity(ctx context.Context, productID int, quantity int) error {
	if quantity <= 0 {
		return m.Remove(ctx, productID)
	}
	return m.mutate(ctx, func(lines []models.CartLine) []models.CartLine {
		for i := range lines {
			if lines[i].ProductID == productID {
				lines[i].Quantity = quantity
			}
		}
		return lines
	})
}

// Clear empties the cart.
func (m *Manager) Clear(ctx context.Context) error {
	return m.mutate(ctx, func([]models.CartLine) []models.CartLine {
		return []models.CartLine{}
	})
}

// mutate applies fn to a copy of the lines, persists the result, and only
// then installs it in memory. On a persist failure the previous state stays
// visible, so memory and store never observably diverge.
func (m *Manager) mutate(ctx context.Context, fn func([]models.CartLine) []models.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := fn(append([]models.CartLine(nil), m.lines...))

	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeyCart, string(raw)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	m.lines = next
	m.notifier.Broadcast()
	return nil
}

// Lines returns a copy of the current line sequence.
func (m *Manager) Lines() []models.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.CartLine(nil), m.lines...)
}

// LineCount is the number of distinct lines.
func (m *Manager) LineCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}

// TotalQuantity is the sum of quantities across lines.
func (m *Manager) TotalQuantity() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, l := range m.lines {
		total += l.Quantity
	}
	return total
}

// TotalAmount is the sum of line subtotals.
func (m *Manager) TotalAmount() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0.0
	for _, l := range m.lines {
		total += l.Subtotal()
	}
	return total
}
