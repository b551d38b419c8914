package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/MinhAlfred/orchidstore/internal/client/api"
	"github.com/MinhAlfred/orchidstore/internal/client/cart"
	"github.com/MinhAlfred/orchidstore/internal/client/config"
	"github.com/MinhAlfred/orchidstore/internal/client/nav"
	"github.com/MinhAlfred/orchidstore/internal/client/query"
	"github.com/MinhAlfred/orchidstore/internal/client/services"
	"github.com/MinhAlfred/orchidstore/internal/client/session"
	"github.com/MinhAlfred/orchidstore/internal/client/storage"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

// App wires the client together: the shared transport, the durable store,
// the session, the cart, and one service per entity kind. It is also the
// Notifier the services deliver toasts through, and the navigator behind
// nav.NavigateTo.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	store    *storage.SQLiteStore
	notifier *storage.Notifier
	api      *api.Client
	cache    *query.Cache
	session  *session.Manager
	cart     *cart.Manager

	auth       *services.AuthService
	orchids    *services.OrchidService
	categories *services.CategoryService
	orders     *services.OrderService
	accounts   *services.AccountService
	roles      *services.RoleService

	reader *bufio.Reader

	mu    sync.RWMutex
	route string
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	app := &App{
		config:   cfg,
		log:      log,
		db:       db,
		store:    storage.NewSQLiteStore(db),
		notifier: storage.NewNotifier(),
		cache:    query.NewCache(),
		reader:   bufio.NewReader(os.Stdin),
		route:    nav.RouteLogin,
	}

	app.api = api.New(cfg.APIBaseURL, cfg.HTTPTimeout, app.store, app.notifier, log)
	app.session = session.NewManager(app.store, app.api, app, log)

	app.cart, err = cart.NewManager(ctx, app.store, app.notifier, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	app.auth = services.NewAuthService(app.api, app.store, app.session, app.cache, app, log)
	app.orchids = services.NewOrchidService(app.api, app.cache, app, log)
	app.categories = services.NewCategoryService(app.api, app.cache, app, log)
	app.orders = services.NewOrderService(app.api, app.cache, app, log)
	app.accounts = services.NewAccountService(app.api, app.cache, app, log)
	app.roles = services.NewRoleService(app.api, app.cache, app, log)

	nav.SetNavigator(app.setRoute)

	return app, nil
}

// Success and Error satisfy services.Notifier and session.Notifier.
func (a *App) Success(msg string) { printlnFn(msg) }
func (a *App) Error(msg string)   { printlnFn("Error:", msg) }

func (a *App) setRoute(path string) {
	a.mu.Lock()
	a.route = path
	a.mu.Unlock()
}

func (a *App) currentRoute() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.route
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated(context.Background())
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Email + " "
	}
	return s + a.currentRoute()
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Init(ctx)
	if a.session.IsAuthenticated(ctx) {
		if a.session.IsAdmin() {
			a.setRoute(nav.RouteOrchidList)
		} else {
			a.setRoute(nav.RouteHome)
		}
	}

	go a.watchStoreChanges(ctx)

	printlnFn("Welcome to Orchid Store CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// watchStoreChanges reacts to store broadcasts the way a browser tab reacts
// to storage events from its siblings: the cart rehydrates and the session
// drops its user if the token is gone.
func (a *App) watchStoreChanges(ctx context.Context) {
	ch := a.notifier.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			if err := a.cart.Reload(ctx); err != nil {
				a.log.Error(ctx, "failed to reload cart after store change", "error", err)
			}
			a.session.Sync(ctx)
		}
	}
}

func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Error(context.Background(), "error closing database", "error", err)
	}
}
