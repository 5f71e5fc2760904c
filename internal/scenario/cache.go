package scenario

import (
	"context"
	"time"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/redis"
)

// Store layers the Redis read-through cache over the repository. When
// Redis is disabled every call falls through to Postgres unchanged.
type Store struct {
	repository *Repository
	cache      *redis.Cache
	ttl        time.Duration
	logger     *logger.Logger
}

// NewStore creates a cached scenario store. ttl bounds how long a single
// scenario may be served from cache after a write elsewhere.
func NewStore(repository *Repository, cache *redis.Cache, ttl time.Duration, logger *logger.Logger) *Store {
	return &Store{
		repository: repository,
		cache:      cache,
		ttl:        ttl,
		logger:     logger,
	}
}

// Save writes through to Postgres and drops the cached copy so the next
// read repopulates it.
func (s *Store) Save(ctx context.Context, sc *Scenario) error {
	if err := s.repository.Save(ctx, sc); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, redis.ScenarioKey(sc.ID)); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"scenario_id": sc.ID,
			"error":       err,
		}).Warn("Failed to invalidate scenario cache")
	}

	return nil
}

// Get retrieves a scenario, serving from cache when warm.
func (s *Store) Get(ctx context.Context, id string) (*Scenario, error) {
	var sc Scenario
	err := s.cache.GetOrSet(ctx, redis.ScenarioKey(id), &sc, s.ttl, func() (interface{}, error) {
		return s.repository.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// List retrieves a page of scenarios, most recently updated first.
// Listing pages are not invalidated on writes; staleness is capped at
// TTLShort.
func (s *Store) List(ctx context.Context, limit, offset int) ([]Scenario, error) {
	scenarios := make([]Scenario, 0)
	err := s.cache.GetOrSet(ctx, redis.ScenarioListKey(limit, offset), &scenarios, redis.TTLShort, func() (interface{}, error) {
		return s.repository.List(ctx, limit, offset)
	})
	if err != nil {
		return nil, err
	}
	return scenarios, nil
}

// Delete removes a scenario and its cached copy.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, redis.ScenarioKey(id)); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"scenario_id": id,
			"error":       err,
		}).Warn("Failed to invalidate scenario cache")
	}

	return nil
}

// PruneDrafts removes stale drafts. Cached copies of pruned drafts age
// out on their own within the TTL.
func (s *Store) PruneDrafts(ctx context.Context, olderThan time.Time) (int64, error) {
	return s.repository.PruneDrafts(ctx, olderThan)
}
