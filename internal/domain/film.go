package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCreditRole is assigned to the uploading artist when no credits are given.
const DefaultCreditRole = "DIRECTOR"

// Film is a piece of content in the catalog. Only approved films accept
// donations and comments.
type Film struct {
	ID          uuid.UUID
	CreatorID   uuid.UUID
	Title       string
	Description *string
	Genre       *string
	Mood        *string
	Year        *int
	DurationMin *int
	Language    *string
	Status      FilmStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Credits []FilmCredit
}

// FilmCredit links an artist to a film with a role (director, editor, ...).
type FilmCredit struct {
	FilmID   uuid.UUID
	ArtistID uuid.UUID
	Role     string
}

// IsApproved reports whether the film is visible to everyone.
func (f *Film) IsApproved() bool {
	return f.Status == FilmStatusApproved
}

// PayableCreatorIDs returns the uploading artist followed by every credited
// artist, without duplicates.
func (f *Film) PayableCreatorIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(f.Credits)+1)
	seen := make(map[uuid.UUID]struct{}, len(f.Credits)+1)

	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	add(f.CreatorID)
	for _, c := range f.Credits {
		add(c.ArtistID)
	}
	return ids
}

// IsPayableCreator reports whether id may receive donations made for this film.
func (f *Film) IsPayableCreator(id uuid.UUID) bool {
	if f.CreatorID == id {
		return true
	}
	for _, c := range f.Credits {
		if c.ArtistID == id {
			return true
		}
	}
	return false
}

// FilmFilter narrows catalog listings.
type FilmFilter struct {
	Status    *FilmStatus
	CreatorID *uuid.UUID
	Genre     *string
	Limit     int
	Offset    int

	// OldestFirst sorts by created_at ascending (moderation queue).
	OldestFirst bool
}
