// Package cli provides the interactive Orchid Store command-line client.
//
// It wires configuration, the local key-value store, the shared API
// transport, and an interactive REPL over the storefront's entities. Typical
// flow: restore the session from the stored token, start a background watcher
// for store changes, and execute user commands.
//
// Key features:
//   - Login / Register / Logout with role-aware navigation
//   - Browse the catalogue and view orchid details
//   - Cart management and checkout
//   - Order history, and full admin CRUD over orchids, categories, users,
//     roles, and orders
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
