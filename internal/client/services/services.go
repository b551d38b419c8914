// Package services is the remote data layer: one service per entity kind,
// each wrapping the shared transport with keyed read caching and
// mutation-driven invalidation. Failures become user-visible notifications
// and are re-returned so callers can branch on them.
package services

import (
	"context"

	"github.com/MinhAlfred/orchidstore/internal/client/api"
	"github.com/MinhAlfred/orchidstore/internal/client/query"
)

// Transport is the slice of the HTTP client the services use. *api.Client
// satisfies it; tests substitute fakes.
type Transport interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string) error
}

// Notifier delivers user-facing notifications (success and failure toasts).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Entity kinds. They double as cache key roots: a list caches under the
// kind itself, discriminated queries under "kind/..." sub-keys.
const (
	kindOrchids     = "orchids"
	kindCategories  = "categories"
	kindOrders      = "orders"
	kindAccounts    = "users"
	kindRoles       = "roles"
	kindCurrentUser = "currentUser"
)

// invalidationsByKind is the static invalidation graph: a successful
// mutation on a kind drops every cached query of the kinds it maps to.
// Declared in one place so a new derived query cannot be forgotten by an
// individual mutation.
var invalidationsByKind = map[string][]string{
	kindOrchids:     {kindOrchids},
	kindCategories:  {kindCategories},
	kindOrders:      {kindOrders},
	kindAccounts:    {kindAccounts},
	kindRoles:       {kindRoles},
	kindCurrentUser: {kindCurrentUser},
}

func invalidate(cache *query.Cache, kind string) {
	for _, k := range invalidationsByKind[kind] {
		cache.InvalidateKind(k)
	}
}

// failureMessage builds the user-facing text for a failed operation: the
// server's reason when present, then the error's own message, then the
// hardcoded fallback.
func failureMessage(err error, fallback string) string {
	if r := api.Reason(err); r != "" {
		return r
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
