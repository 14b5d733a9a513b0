// Package manifold provides the Manifold Markets REST API client.
//
// Endpoints used:
//   - GET  /v0/user/{handle}       (unauthenticated)
//   - GET  /v0/me                  (authenticated)
//   - GET  /v0/market/{id}         (unauthenticated)
//   - POST /v0/bet                 (authenticated)
//   - POST /v0/market/{id}/sell    (authenticated)
//
// Authenticated requests carry "Authorization: Key <token>".
package manifold
