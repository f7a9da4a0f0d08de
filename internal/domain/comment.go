package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a viewer's rating and review of a film. Comments are never
// edited after creation.
type Comment struct {
	ID        uuid.UUID
	FilmID    uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Text      string
	CreatedAt time.Time
}
