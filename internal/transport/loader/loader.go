// Package loader provides per-request DataLoaders that batch the film and
// user lookups needed to render donation and comment lists. Loaders call
// repositories directly and apply no visibility rules, so handlers only
// expose fields that are public (titles, usernames).
package loader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type filmRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Film, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Film filmRepo
	User userRepo
}

// Loaders is created per request via NewLoaders.
type Loaders struct {
	FilmByID *dataloader.Loader[uuid.UUID, *domain.Film]
	UserByID *dataloader.Loader[uuid.UUID, *domain.User]
}

// NewLoaders creates loaders backed by the given repositories. Loaders cache
// results, so a set must not outlive one request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		FilmByID: newLoader(newFilmBatchFn(repos.Film)),
		UserByID: newLoader(newUserBatchFn(repos.User)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context. It panics when the
// middleware was not installed.
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("loader: loaders not found in context, is the middleware installed?")
	}
	return l
}
