package service

import (
	"context"
	"math/rand"

	"pulse-backend/internal/domains/user"
	"pulse-backend/internal/metrics"
	"pulse-backend/pkg/cache"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
)

const (
	candidatePoolSize    = 15
	suggestionLimit      = 6
	mutualFollowerLimit  = 3
	auraOrderProbability = 0.7
)

// Rand is the randomness the pipeline consumes. *rand.Rand satisfies it;
// tests inject a seeded source for deterministic runs.
type Rand interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// globalRand delegates to the package-level math/rand functions, which are
// safe for concurrent use.
type globalRand struct{}

func (globalRand) Float64() float64                   { return rand.Float64() }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

type suggestionServiceImpl struct {
	repository user.UserRepository
	cache      cache.Cache
	rand       Rand
}

func NewSuggestionService(repo user.UserRepository, c cache.Cache, rng Rand) user.SuggestionService {
	if rng == nil {
		rng = globalRand{}
	}
	return &suggestionServiceImpl{
		repository: repo,
		cache:      c,
		rand:       rng,
	}
}

// ============================================================
// Suggest
// ============================================================
// Pipeline:
// 1. Serve the viewer's cached list when present.
// 2. Load the recently-shown set so the last hour's picks are excluded.
// 3. Query a ranked candidate pool, ordered by aura with probability 0.7,
//    otherwise by follower count.
// 4. Shuffle the pool and keep the first 6.
// 5. Record the picks in the recently-shown set and refresh its TTL.
// 6. Annotate each pick with up to 3 mutual followers.
// 7. Cache the final list and return it.
// Fewer than 6 eligible candidates returns however many exist.
func (s *suggestionServiceImpl) Suggest(
	ctx context.Context,
	viewerID uuid.UUID,
) ([]user.SuggestedUser, error) {
	listKey := suggestedUsersKey(viewerID)

	var cached []user.SuggestedUser
	found, err := s.cache.Get(ctx, listKey, &cached)
	if err != nil {
		logger.Warn("Suggest: cache read failed", err)
	}
	if found {
		metrics.CacheHits.WithLabelValues("suggested-users").Inc()
		return cached, nil
	}
	metrics.CacheMisses.WithLabelValues("suggested-users").Inc()

	recent, err := s.recentlyShown(ctx, viewerID)
	if err != nil {
		logger.Warn("Suggest: recently-shown read failed", err)
		recent = nil
	}

	byAura := s.rand.Float64() < auraOrderProbability

	candidates, err := s.repository.SuggestionCandidates(ctx, viewerID, recent, byAura, candidatePoolSize)
	if err != nil {
		return nil, err
	}

	s.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > suggestionLimit {
		candidates = candidates[:suggestionLimit]
	}

	if len(candidates) > 0 {
		if err := s.recordShown(ctx, viewerID, candidates); err != nil {
			return nil, err
		}
	}

	for i := range candidates {
		mutual, err := s.repository.MutualFollowers(ctx, viewerID, candidates[i].ID, mutualFollowerLimit)
		if err != nil {
			return nil, err
		}
		candidates[i].MutualFollowers = mutual
	}

	if err := s.cache.Set(ctx, listKey, candidates, suggestedUsersTTL); err != nil {
		return nil, err
	}

	metrics.SuggestionsServed.Add(float64(len(candidates)))

	return candidates, nil
}

// recentlyShown loads the viewer's exclusion set. Members that fail to parse
// as uuids are skipped rather than failing the whole pipeline.
func (s *suggestionServiceImpl) recentlyShown(ctx context.Context, viewerID uuid.UUID) ([]uuid.UUID, error) {
	members, err := s.cache.SetMembers(ctx, recentlyShownKey(viewerID))
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// recordShown adds the picks to the recently-shown set and extends its TTL,
// so the next refresh within the hour surfaces different users.
func (s *suggestionServiceImpl) recordShown(ctx context.Context, viewerID uuid.UUID, picks []user.SuggestedUser) error {
	key := recentlyShownKey(viewerID)

	members := make([]string, 0, len(picks))
	for _, p := range picks {
		members = append(members, p.ID.String())
	}

	if err := s.cache.SetAdd(ctx, key, members...); err != nil {
		return err
	}

	return s.cache.Expire(ctx, key, recentlyShownTTL)
}
