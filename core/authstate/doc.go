// Package authstate owns the single source of truth for who is using the
// application.
//
// A Controller starts in the loading state, probes the backend once for the
// current identity, and afterwards only moves between Authenticated and
// Anonymous. It subscribes to the session transport's forced-logout signal so
// an unrecoverable 401 anywhere in the process immediately clears the
// identity and redirects to the sign-in screen.
//
//	ctrl := authstate.New(authAPI, client, nav, client.LogoutSignal())
//	defer ctrl.Close()
//
//	ctrl.Initialize(ctx) // never fails; anonymous is a normal outcome
//	if user, ok := ctrl.User(); ok {
//		...
//	}
//
// The controller is an injectable value, not a package global, so tests can
// construct isolated instances.
package authstate
