package hackernews

import (
	"context"

	"github.com/google/uuid"
)

type HackerNewsRepository interface {
	// Upsert inserts the item or, when its guid is already known, refreshes
	// the stored copy. Reports whether a row was written.
	Upsert(ctx context.Context, item *Item) (bool, error)

	ListItems(ctx context.Context, cursor *uuid.UUID, limit int) ([]Item, error)
}
