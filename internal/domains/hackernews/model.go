package hackernews

import (
	"time"

	"github.com/google/uuid"
)

// Item is one ingested HackerNews story. Guid is the feed's stable
// identifier and the upsert key, repeated syncs update in place.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Guid        string    `json:"-"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Author      *string   `json:"author,omitempty"`
	Summary     *string   `json:"summary,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"-"`
}

type ListResp struct {
	Items      []Item  `json:"items"`
	NextCursor *string `json:"nextCursor"`
}
