package cache

import (
	"context"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/suspension"
	"github.com/futliga/liga-api/internal/domain/team"
	basecache "github.com/futliga/liga-api/internal/platform/cache"
)

// Read-through decorators for the hot public views: standings, schedule and
// rosters hit team and match listings on every page load. Writes invalidate
// by division prefix so the next read repopulates.

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByDivision(ctx context.Context, division string) ([]team.Team, error) {
	key := "team:list:" + division
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByDivision(ctx, division)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item)
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item)
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	if err := r.next.Delete(ctx, teamID); err != nil {
		return err
	}
	// Division unknown at this point; drop every team list.
	r.cache.DeletePrefix(ctx, "team:list:")
	r.cache.Delete(ctx, "team:id:"+teamID)
	return nil
}

func (r *TeamRepository) invalidate(ctx context.Context, item team.Team) {
	r.cache.Delete(ctx, "team:list:"+item.Division)
	r.cache.Delete(ctx, "team:id:"+item.ID)
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListByDivision(ctx context.Context, division string, filter match.Filter) ([]match.Match, error) {
	// Only the unfiltered and finished-only listings are hot; filtered
	// variants pass through.
	key := ""
	switch {
	case filter.Round == nil && filter.Status == "":
		key = "match:list:" + division
	case filter.Round == nil && filter.Status == match.StatusFinished:
		key = "match:list:" + division + ":finished"
	}
	if key == "" {
		return r.next.ListByDivision(ctx, division, filter)
	}

	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByDivision(ctx, division, filter)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	return r.next.GetByID(ctx, matchID)
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:list:"+item.Division)
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	if err := r.next.Delete(ctx, matchID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:list:")
	return nil
}

func (r *MatchRepository) Finalize(ctx context.Context, item match.Match, suspensions []suspension.Suspension) error {
	if err := r.next.Finalize(ctx, item, suspensions); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:list:"+item.Division)
	return nil
}
