package services

import (
	"context"
	"fmt"

	"github.com/JojerDojer/web-420/internal/keylock"
	"github.com/JojerDojer/web-420/internal/repositories"
)

// appendEmbedded adds elem to the end of arrayField on the parent found by
// field=value and persists the parent. Stores with a native push do it in one
// operation; otherwise it is fetch, mutate, rewrite, serialized per parent by
// locker. With keylock.Noop two concurrent appends can lose one of them.
func appendEmbedded[T, E any](
	ctx context.Context,
	repo repositories.Repository[T],
	locker keylock.Locker,
	field string, value any,
	arrayField string, elem E,
	push func(parent *T, elem E),
) (*T, error) {
	if a, ok := repo.(repositories.ArrayAppender[T]); ok {
		return a.AppendToArray(ctx, field, value, arrayField, elem)
	}

	unlock, err := locker.Lock(ctx, fmt.Sprintf("%s:%s=%v", arrayField, field, value))
	if err != nil {
		return nil, fmt.Errorf("lock parent for %s: %w", arrayField, err)
	}
	defer unlock()

	parent, err := repo.FindOne(ctx, field, value)
	if err != nil {
		return nil, err
	}
	push(parent, elem)
	if err := repo.Update(ctx, parent); err != nil {
		return nil, err
	}
	return parent, nil
}

// listEmbedded returns arrayField of the parent found by field=value. A missing
// parent surfaces as repositories.ErrNotFound, never as a nil dereference.
func listEmbedded[T, E any](
	ctx context.Context,
	repo repositories.Repository[T],
	field string, value any,
	get func(parent *T) []E,
) ([]E, error) {
	parent, err := repo.FindOne(ctx, field, value)
	if err != nil {
		return nil, err
	}
	items := get(parent)
	if items == nil {
		items = []E{}
	}
	return items, nil
}
