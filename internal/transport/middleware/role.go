package middleware

import (
	"context"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/pkg/ctxutil"
)

// RequireRole checks the caller's role against the allowed set. It returns
// domain.ErrUnauthorized when the context carries no identity and
// domain.ErrForbidden when the role is not allowed. With no roles given any
// authenticated caller passes.
// Use in REST handlers before calling a service, not as HTTP middleware.
func RequireRole(ctx context.Context, allowed ...domain.UserRole) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if len(allowed) == 0 {
		return nil
	}
	if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).In(allowed...) {
		return domain.ErrForbidden
	}
	return nil
}
