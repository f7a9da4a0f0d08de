package domain

import "slices"

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleViewer    UserRole = "viewer"
	UserRoleArtist    UserRole = "artist"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleViewer, UserRoleArtist, UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// CanModerate reports whether the role may approve or reject films.
func (r UserRole) CanModerate() bool {
	return r == UserRoleModerator || r == UserRoleAdmin
}

// CanReceiveDonations reports whether a user with this role is a payable creator.
func (r UserRole) CanReceiveDonations() bool {
	return r == UserRoleArtist
}

// In reports whether r is one of the given roles.
func (r UserRole) In(roles ...UserRole) bool {
	return slices.Contains(roles, r)
}

// SelfServiceRoles are the roles a user may pick at registration.
var SelfServiceRoles = []UserRole{UserRoleViewer, UserRoleArtist}

// FilmStatus is the moderation state of a film.
type FilmStatus string

const (
	FilmStatusPending  FilmStatus = "pending"
	FilmStatusApproved FilmStatus = "approved"
	FilmStatusRejected FilmStatus = "rejected"
)

func (s FilmStatus) String() string { return string(s) }

func (s FilmStatus) IsValid() bool {
	switch s {
	case FilmStatusPending, FilmStatusApproved, FilmStatusRejected:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeFilm EntityType = "FILM"
	EntityTypeUser EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeFilm, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of decision recorded in the audit log.
type AuditAction string

const (
	AuditActionApprove    AuditAction = "APPROVE"
	AuditActionReject     AuditAction = "REJECT"
	AuditActionRoleChange AuditAction = "ROLE_CHANGE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionApprove, AuditActionReject, AuditActionRoleChange:
		return true
	}
	return false
}
