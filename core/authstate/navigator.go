package authstate

// Application routes the controller redirects between.
const (
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteDashboard = "/dashboard"
)

// Navigator abstracts the UI router: where the user currently is and how to
// move them. Implementations must be safe for concurrent use because forced
// logouts arrive from the transport's goroutine.
type Navigator interface {
	// Current returns the current route path.
	Current() string
	// Go navigates to the given route path.
	Go(route string)
}
