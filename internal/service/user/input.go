package user

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

const (
	maxNameLen  = 255
	maxBioLen   = 2000
	maxSkills   = 20
	maxSkillLen = 64
)

// UpdateProfileInput holds parameters for profile update operation.
// Nil fields keep the stored value.
type UpdateProfileInput struct {
	Name   *string
	Bio    *string
	Skills []string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len([]rune(name)) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Bio != nil && len([]rune(*i.Bio)) > maxBioLen {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "too long"})
	}

	if len(i.Skills) > maxSkills {
		errs = append(errs, domain.FieldError{Field: "skills", Message: "too many skills"})
	}
	for _, s := range i.Skills {
		if strings.TrimSpace(s) == "" || len(s) > maxSkillLen {
			errs = append(errs, domain.FieldError{Field: "skills", Message: "each skill must be 1-64 characters"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetRoleInput holds parameters for SetUserRole.
type SetRoleInput struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

// Validate validates the role change input.
func (i SetRoleInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be viewer, artist, moderator or admin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListUsersInput holds parameters for ListUsers.
type ListUsersInput struct {
	Role   *domain.UserRole
	Limit  int
	Offset int
}

// Validate validates the list users input.
func (i ListUsersInput) Validate() error {
	var errs []domain.FieldError

	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
