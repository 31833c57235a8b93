// Package cache wraps the storage repositories with a TTL read cache.
// Game reads stay uncached: live scores must not lag behind the store.
package cache

import (
	"context"
	"strconv"

	"github.com/qazleague/cup-service/internal/domain/bracket"
	"github.com/qazleague/cup-service/internal/domain/participant"
	"github.com/qazleague/cup-service/internal/domain/season"
	"github.com/qazleague/cup-service/internal/domain/stage"
	basecache "github.com/qazleague/cup-service/internal/platform/cache"
)

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	key := "season:id:" + strconv.FormatInt(seasonID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return cachedSeasonByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeasonByID)
	return cached.value, cached.exists, nil
}

type cachedSeasonByID struct {
	value  season.Season
	exists bool
}

type StageRepository struct {
	next  stage.Repository
	cache *basecache.Store
}

func NewStageRepository(next stage.Repository, cache *basecache.Store) *StageRepository {
	return &StageRepository{next: next, cache: cache}
}

func (r *StageRepository) ListBySeason(ctx context.Context, seasonID int64) ([]stage.Stage, error) {
	key := "stage:list:" + strconv.FormatInt(seasonID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]stage.Stage(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]stage.Stage)
	return append([]stage.Stage(nil), items...), nil
}

type ParticipantRepository struct {
	next  participant.Repository
	cache *basecache.Store
}

func NewParticipantRepository(next participant.Repository, cache *basecache.Store) *ParticipantRepository {
	return &ParticipantRepository{next: next, cache: cache}
}

func (r *ParticipantRepository) ListBySeason(ctx context.Context, seasonID int64) ([]participant.Participant, error) {
	key := "participant:list:" + strconv.FormatInt(seasonID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]participant.Participant(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]participant.Participant)
	return append([]participant.Participant(nil), items...), nil
}

type BracketRepository struct {
	next  bracket.Repository
	cache *basecache.Store
}

func NewBracketRepository(next bracket.Repository, cache *basecache.Store) *BracketRepository {
	return &BracketRepository{next: next, cache: cache}
}

func (r *BracketRepository) ListBySeason(ctx context.Context, seasonID int64) ([]bracket.StoredEntry, error) {
	key := "bracket:list:" + strconv.FormatInt(seasonID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]bracket.StoredEntry(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]bracket.StoredEntry)
	return append([]bracket.StoredEntry(nil), items...), nil
}
