package service

import (
	"context"
	"errors"
	"fmt"

	"exploreWithMe/internal/models"
	"exploreWithMe/internal/storage"
)

func getUser(ctx context.Context, store UserStore, id int64) (*models.User, error) {
	u, err := store.User(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("user with id=%d was not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}

	return u, nil
}

func getCategory(ctx context.Context, store CategoryStore, id int64) (*models.Category, error) {
	c, err := store.Category(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("category with id=%d was not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}

	return c, nil
}

func getEvent(ctx context.Context, store EventStore, id int64) (*models.Event, error) {
	e, err := store.Event(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("event with id=%d was not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}

	return e, nil
}

func lockEvent(ctx context.Context, store EventStore, id int64) (*models.Event, error) {
	e, err := store.EventForUpdate(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("event with id=%d was not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("lock event %d: %w", id, err)
	}

	return e, nil
}

func getRequest(ctx context.Context, store RequestStore, id int64) (*models.Request, error) {
	r, err := store.Request(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("request with id=%d was not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get request %d: %w", id, err)
	}

	return r, nil
}

func getCompilation(ctx context.Context, store CompilationStore, id int64) (*models.Compilation, error) {
	c, err := store.Compilation(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("compilation with id=%d was not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get compilation %d: %w", id, err)
	}

	return c, nil
}

func getRating(ctx context.Context, store RatingStore, id int64) (*models.Rating, error) {
	r, err := store.Rating(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("rating with id=%d was not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get rating %d: %w", id, err)
	}

	return r, nil
}

// offset converts from/size paging into a row offset aligned to whole pages.
func offset(from, size int) (int, error) {
	if from < 0 {
		return 0, invalid("from must not be negative")
	}
	if size <= 0 {
		return 0, invalid("size must be positive")
	}

	return (from / size) * size, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
