package nav

// Route table of the storefront. The REPL treats routes as screens; the
// transport and services navigate by these constants after auth failures and
// successful mutations.
const (
	RouteHome         = "/view"
	RouteLogin        = "/login"
	RouteRegister     = "/register"
	RouteOrchidList   = "/home"
	RouteOrchidDetail = "/detail"
	RouteEditOrchid   = "/edit"
	RouteUsers        = "/users"
	RouteCategories   = "/categories"
	RouteRoles        = "/roles"
	RouteOrders       = "/orders"
	RouteCart         = "/cart"
)
