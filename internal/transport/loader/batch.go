package loader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

func newFilmBatchFn(repo filmRepo) dataloader.BatchFunc[uuid.UUID, *domain.Film] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Film] {
		films, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Film](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Film, len(films))
		for i := range films {
			byID[films[i].ID] = &films[i]
		}
		return mapResults(keys, byID)
	}
}

func newUserBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}
		return mapResults(keys, byID)
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults returns results in key order. Missing keys yield the zero value
// (nil for pointers), not an error.
func mapResults[V any](keys []uuid.UUID, found map[uuid.UUID]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: found[key]}
	}
	return results
}
