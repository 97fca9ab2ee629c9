// Package auth implements the pluggable authentication capability of the client.
//
// # Provider Interface
//
// Three historical revisions of the upstream client modeled authentication three
// different ways; here they are one capability behind [Provider], selected at
// composition time:
//   - [SessionProvider] : server session cookie, probed via GET /session
//   - [EndpointProvider] : explicit /auth/status, /auth/login and /auth/logout endpoints
//   - [TableProvider] : local credential table with roles, no server round-trips
//
// # Controller
//
// [Controller] owns the [models.Session] and is the only writer to it. It
// resolves the initial session fail-closed (any probe failure leaves the user
// unauthenticated, no retry), applies login and logout transitions, and
// implements the workflow's AuthSink so an authorization-denied response on any
// protected call demotes the session.
//
// State machine:
//
//	Unknown → (probe) → {Unauthenticated, Authenticated(role)}
//	Unauthenticated → (login success) → Authenticated(role)
//	Authenticated → (logout | login rejected | authorization denied) → Unauthenticated
//
// No state is terminal; the machine is re-entrant for the life of the run.
package auth
