// Package services implements the HTTP boundary to the report processing service.
//
// # Client
//
// [Client] wraps a [net/http.Client] carrying a cookie jar so every request is
// made with credentials included; two of the three authentication modes rely on
// a server-managed session cookie. An optional [rate.Limiter] throttles outgoing
// requests as an advisory guard against accidental double submits.
//
// # Endpoints
//
// JSON endpoints (session probe, login, logout, health) go through
// [Client.GetJSON] and [Client.PostJSON], which return an [APIResponse] with the
// raw body plus decoded JSON when the body parses.
//
// The processing endpoint is different: [Client.ProcessFiles] uploads the two
// selected files as a multipart form and treats the response body as an opaque
// binary payload rather than decoding it.
//
// # Error Handling
//
// Failures map onto typed errors from the shared package:
//   - [shared.ErrSessionExpired] : HTTP 401 on a protected call
//   - [shared.ErrProcessFailed] : any other non-2xx or transport failure of /process
//   - [shared.ErrAPIRequest] : transport failure of a JSON endpoint
package services
