// Package nav holds a process-wide navigation binding. Non-UI code (the
// transport's auth-failure path, mutation success handlers) navigates through
// it without depending on the screen layer. The binding must be set before
// any request that could redirect is issued; NavigateTo before binding is a
// logged no-op.
package nav

import (
	"log/slog"
	"sync"
)

// Func performs the actual navigation to a route path.
type Func func(path string)

var (
	mu        sync.RWMutex
	navigator Func
)

// SetNavigator binds the process-wide navigation function. Rebinding is
// allowed and idempotent in effect; the last binding wins.
func SetNavigator(fn Func) {
	mu.Lock()
	defer mu.Unlock()
	navigator = fn
}

// NavigateTo invokes the bound navigation function, or warns when none is
// bound yet.
func NavigateTo(path string) {
	mu.RLock()
	fn := navigator
	mu.RUnlock()

	if fn == nil {
		slog.Warn("navigator not set", "path", path)
		return
	}
	fn(path)
}
