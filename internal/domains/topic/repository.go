package topic

import (
	"context"
	"time"
)

type TopicRepository interface {
	// UsageSince aggregates topic usage for posts created at or after the
	// given instant.
	UsageSince(ctx context.Context, since time.Time) ([]TopicUsage, error)
}
