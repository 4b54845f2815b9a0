// Package apiclient provides the authenticated HTTP transport for the
// tournament platform API.
//
// A Client owns the single in-memory access-token slot and attaches outbound
// credentials to every request: an Authorization bearer header while a token
// is held, and an Accept-Language header always. Refresh credentials live in
// an httpOnly cookie managed by the client's cookie jar, never in this
// process's memory.
//
// When a request comes back 401 the client silently calls the refresh
// endpoint, stores the new access token, and replays the original request
// once. Concurrent 401s share a single refresh call. A 401 from one of the
// auth bootstrap endpoints (login, refresh, who-am-i) is never retried, and a
// failed refresh clears the token slot, publishes a forced-logout signal on
// the client's broadcaster, and surfaces the original error:
//
//	client, err := apiclient.New(cfg, apiclient.WithLocaleProvider(store.Current))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	var me User
//	err = client.Get(ctx, "/auth/me", &me)
//
// All methods are safe for concurrent use.
package apiclient
