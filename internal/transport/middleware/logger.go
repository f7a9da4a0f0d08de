package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/stagehype-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, user_id).
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK, ctx: r.Context()}

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			requestID := ctxutil.RequestIDFromCtx(r.Context())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", duration),
				slog.String("request_id", requestID),
			}
			// Auth runs inside this middleware and reports the identity
			// through Identify.
			if userID, ok := ctxutil.UserIDFromCtx(sw.ctx); ok {
				attrs = append(attrs,
					slog.String("user_id", userID.String()),
					slog.String("role", ctxutil.RoleFromCtx(sw.ctx)))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code
// and, via Identify, the context an inner middleware derived.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	ctx         context.Context
}

type identifier interface {
	Identify(ctx context.Context)
}

// Identify records the request context seen by the handler and passes it to
// any outer statusWriter.
func (w *statusWriter) Identify(ctx context.Context) {
	w.ctx = ctx
	if inner, ok := w.ResponseWriter.(identifier); ok {
		inner.Identify(ctx)
	}
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
