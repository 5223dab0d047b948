// Package middleware groups the Fiber middleware shared by every feature.
//
//   - auth: API key check on the X-API-Key header. An empty key disables it.
//   - rayid: tags each request with an id, reused from X-Ray-ID when the
//     client sends one, so log lines of one transfer can be correlated.
//
// The start command registers rayid first so that later middleware and
// handlers can log with logger.WithRayID.
package middleware
