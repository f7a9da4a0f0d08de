package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/pkg/ctxutil"
)

// SetUserRole changes the role of a user and records the change in the audit
// log. An admin cannot take the admin role away from themselves.
func (s *Service) SetUserRole(ctx context.Context, input SetRoleInput) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if callerID == input.UserID && input.Role != domain.UserRoleAdmin {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	var (
		updated *domain.User
		oldRole domain.UserRole
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, input.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		oldRole = current.Role
		if current.Role == input.Role {
			updated = current
			return nil
		}

		updated, err = s.users.UpdateRole(txCtx, input.UserID, input.Role)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}

		targetID := input.UserID
		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     callerID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &targetID,
			Action:     domain.AuditActionRoleChange,
			Changes: map[string]any{
				"old_role": current.Role.String(),
				"new_role": input.Role.String(),
			},
			CreatedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	if oldRole != input.Role {
		s.log.InfoContext(ctx, "user role updated",
			slog.String("target_user_id", input.UserID.String()),
			slog.String("old_role", oldRole.String()),
			slog.String("new_role", input.Role.String()),
		)
	}

	return updated, nil
}

// ListUsers returns a page of users, newest first, together with the total
// number of users matching the role filter.
func (s *Service) ListUsers(ctx context.Context, input ListUsersInput) ([]domain.User, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	users, err := s.users.ListUsers(ctx, input.Role, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	total, err := s.users.CountUsers(ctx, input.Role)
	if err != nil {
		return nil, 0, fmt.Errorf("user.CountUsers: %w", err)
	}

	return users, total, nil
}
