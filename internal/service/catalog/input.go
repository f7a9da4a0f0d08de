package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxShortFieldLen  = 64
	maxCredits        = 20
)

// CreditInput links an artist to a new film.
type CreditInput struct {
	ArtistID uuid.UUID
	Role     string
}

// CreateFilmInput holds parameters for CreateFilm.
type CreateFilmInput struct {
	Title       string
	Description *string
	Genre       *string
	Mood        *string
	Year        *int
	DurationMin *int
	Language    *string
	Credits     []CreditInput
}

// Validate validates the create film input.
func (i CreateFilmInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len([]rune(title)) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Description != nil && len([]rune(*i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	for _, f := range []struct {
		name  string
		value *string
	}{{"genre", i.Genre}, {"mood", i.Mood}, {"language", i.Language}} {
		if f.value != nil && len(*f.value) > maxShortFieldLen {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "too long"})
		}
	}

	if i.Year != nil && (*i.Year < 1888 || *i.Year > 2100) {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be between 1888 and 2100"})
	}
	if i.DurationMin != nil && (*i.DurationMin < 1 || *i.DurationMin > 1000) {
		errs = append(errs, domain.FieldError{Field: "duration_min", Message: "must be between 1 and 1000"})
	}

	if len(i.Credits) > maxCredits {
		errs = append(errs, domain.FieldError{Field: "credits", Message: fmt.Sprintf("at most %d credits", maxCredits)})
	}
	seen := make(map[uuid.UUID]struct{}, len(i.Credits))
	for idx, c := range i.Credits {
		field := fmt.Sprintf("credits[%d]", idx)
		if c.ArtistID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: field + ".artist_id", Message: "required"})
		}
		if _, dup := seen[c.ArtistID]; dup {
			errs = append(errs, domain.FieldError{Field: field + ".artist_id", Message: "duplicate artist"})
		}
		seen[c.ArtistID] = struct{}{}
		if role := strings.TrimSpace(c.Role); role == "" {
			errs = append(errs, domain.FieldError{Field: field + ".role", Message: "required"})
		} else if len(role) > maxShortFieldLen {
			errs = append(errs, domain.FieldError{Field: field + ".role", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListFilmsInput holds parameters for ListFilms.
type ListFilmsInput struct {
	Status    *domain.FilmStatus
	CreatorID *uuid.UUID
	Genre     *string
	Limit     int
	Offset    int
}

// Validate validates the list films input.
func (i ListFilmsInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, approved or rejected"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ModerateFilmInput holds parameters for ModerateFilm.
type ModerateFilmInput struct {
	FilmID uuid.UUID
	Action domain.AuditAction
}

// Validate validates the moderation input.
func (i ModerateFilmInput) Validate() error {
	var errs []domain.FieldError

	if i.FilmID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "film_id", Message: "required"})
	}
	if i.Action != domain.AuditActionApprove && i.Action != domain.AuditActionReject {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be APPROVE or REJECT"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ModerateFilmInput) targetStatus() domain.FilmStatus {
	if i.Action == domain.AuditActionApprove {
		return domain.FilmStatusApproved
	}
	return domain.FilmStatusRejected
}
