package middleware

import "net/http"

// Middleware wraps an http.Handler. It has the same shape chi's Use expects.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one is outermost: Chain(a, b)(h) serves
// as a(b(h)). Nil entries are skipped, which lets the router pass optional
// pieces (metrics, rate limits) without checking them first. Chain() with no
// usable entries returns the handler unchanged.
func Chain(mws ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			next = mws[i](next)
		}
		return next
	}
}
