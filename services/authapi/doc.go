// Package authapi provides typed wrappers over the platform's authentication
// endpoints: sign-in, registration, identity probing, email verification and
// the password reset flow.
//
// Login stores the returned access token on the transport, so a successful
// call leaves the client ready for authenticated requests. The Service
// satisfies authstate.IdentityAPI.
package authapi
