package service_test

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/pkg/entity"
)

// memStore keeps athletes and check-ins in memory with the same uniqueness
// rule as the checkins table: one row per athlete and date.
type memStore struct {
	mu       sync.Mutex
	athletes []entity.Athlete
	checkIns map[uuid.UUID]map[entity.Date]entity.CheckIn
	upserts  int
}

func newMemStore(athletes ...entity.Athlete) *memStore {
	return &memStore{
		athletes: athletes,
		checkIns: make(map[uuid.UUID]map[entity.Date]entity.CheckIn),
	}
}

func (s *memStore) FindByCode(_ context.Context, code string) (*entity.Athlete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.athletes {
		if a.Code == code {
			found := a
			return &found, nil
		}
	}
	return nil, errorvalues.ErrAthleteNotFound
}

func (s *memStore) ListActive(context.Context) ([]entity.Athlete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := make([]entity.Athlete, 0)
	for _, a := range s.athletes {
		if a.Active {
			active = append(active, a)
		}
	}
	slices.SortFunc(active, func(a, b entity.Athlete) int {
		return strings.Compare(a.Name, b.Name)
	})
	return active, nil
}

func (s *memStore) Upsert(_ context.Context, c *entity.CheckIn) (*entity.CheckIn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	known := slices.ContainsFunc(s.athletes, func(a entity.Athlete) bool { return a.ID == c.AthleteID })
	if !known {
		return nil, errorvalues.ErrAthleteNotFound
	}
	if s.checkIns[c.AthleteID] == nil {
		s.checkIns[c.AthleteID] = make(map[entity.Date]entity.CheckIn)
	}
	s.checkIns[c.AthleteID][c.Date] = *c
	s.upserts++
	stored := *c
	return &stored, nil
}

func (s *memStore) ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]entity.CheckIn, error) {
	return s.ListByAthletes(ctx, []uuid.UUID{athleteID})
}

func (s *memStore) ListByAthletes(_ context.Context, athleteIDs []uuid.UUID) ([]entity.CheckIn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]entity.CheckIn, 0)
	for _, id := range athleteIDs {
		for _, c := range s.checkIns[id] {
			result = append(result, c)
		}
	}
	slices.SortStableFunc(result, func(a, b entity.CheckIn) int {
		return a.Date.Time().Compare(b.Date.Time())
	})
	return result, nil
}

func (s *memStore) rows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, days := range s.checkIns {
		n += len(days)
	}
	return n
}

type cachedEntry struct {
	generation int64
	dashboard  *entity.Dashboard
}

// memCache follows the generation rule of the Redis cache: Get only returns a
// dashboard stored under the day's current generation.
type memCache struct {
	mu          sync.Mutex
	dashboards  map[entity.Date]cachedEntry
	generations map[entity.Date]int64
	invalidated []entity.Date
}

func newMemCache() *memCache {
	return &memCache{
		dashboards:  make(map[entity.Date]cachedEntry),
		generations: make(map[entity.Date]int64),
	}
}

func (c *memCache) Generation(_ context.Context, day entity.Date) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[day], nil
}

func (c *memCache) Get(_ context.Context, day entity.Date) (*entity.Dashboard, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.dashboards[day]
	if !ok || e.generation != c.generations[day] {
		return nil, errorvalues.ErrCacheMiss
	}
	return e.dashboard, nil
}

func (c *memCache) Set(_ context.Context, d *entity.Dashboard, generation int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dashboards[d.Date] = cachedEntry{generation: generation, dashboard: d}
	return nil
}

func (c *memCache) Invalidate(_ context.Context, day entity.Date) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[day]++
	c.invalidated = append(c.invalidated, day)
	return nil
}

// gatedStore holds the first call of one listing method until release is
// closed. entered is closed once that call is parked. ListByAthletes is held
// after its snapshot has been read.
type gatedStore struct {
	*memStore
	method  string
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedStore(store *memStore, method string) *gatedStore {
	return &gatedStore{
		memStore: store,
		method:   method,
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
}

func (g *gatedStore) hold(ctx context.Context) error {
	first := false
	g.once.Do(func() {
		first = true
		close(g.entered)
	})
	if !first {
		return nil
	}
	select {
	case <-g.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *gatedStore) ListActive(ctx context.Context) ([]entity.Athlete, error) {
	if g.method == "ListActive" {
		if err := g.hold(ctx); err != nil {
			return nil, err
		}
	}
	return g.memStore.ListActive(ctx)
}

func (g *gatedStore) ListByAthletes(ctx context.Context, athleteIDs []uuid.UUID) ([]entity.CheckIn, error) {
	snapshot, err := g.memStore.ListByAthletes(ctx, athleteIDs)
	if err != nil {
		return nil, err
	}
	if g.method == "ListByAthletes" {
		if err = g.hold(ctx); err != nil {
			return nil, err
		}
	}
	return snapshot, nil
}
