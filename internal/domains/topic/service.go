package topic

import "context"

type TrendingService interface {
	// GetTrending serves the cached leaderboard, recomputing on a miss.
	GetTrending(ctx context.Context) (*TrendingResp, error)

	// Refresh recomputes the leaderboard and replaces the cached copy.
	// Called by the scheduled worker job.
	Refresh(ctx context.Context) error
}
