// Package middleware holds the HTTP concerns shared by every route: request
// ids, access logging, metrics, CORS, panic recovery, rate limiting, and the
// token check with its two access gates.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
