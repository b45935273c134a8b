package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/limbo/wellness/internal/aggregation"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/pkg/calendar"
	"github.com/limbo/wellness/pkg/entity"
)

const loadTimeout = 10 * time.Second

type DashboardService struct {
	athletesRepo repository.AthletesRepositoryI
	checksRepo   repository.CheckInsRepositoryI
	calendar     *calendar.Calendar
	cache        DashboardCacheI
	baseURL      string
	loads        singleflight.Group
}

// NewDashboardService builds the coach side. baseURL prefixes personal links;
// empty keeps them relative.
func NewDashboardService(
	athletesRepo repository.AthletesRepositoryI,
	checksRepo repository.CheckInsRepositoryI,
	cal *calendar.Calendar,
	dashboardCache DashboardCacheI,
	baseURL string,
) *DashboardService {
	if athletesRepo == nil || checksRepo == nil {
		log.Fatal("on dashboard service provided nil repos")
	}
	if cal == nil {
		cal = calendar.New(nil)
	}
	return &DashboardService{
		athletesRepo: athletesRepo,
		checksRepo:   checksRepo,
		calendar:     cal,
		cache:        dashboardCache,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

func (ds *DashboardService) GetDashboard(ctx context.Context) (*entity.Dashboard, error) {
	today := ds.calendar.Today()
	if ds.cache != nil {
		cached, err := ds.cache.Get(ctx, today)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, errorvalues.ErrCacheMiss) {
			slog.Warn("dashboard cache read failed", slog.String("error", err.Error()))
		}
	}
	// Concurrent loads of the same day share one round-trip to the store. The
	// shared load does not inherit the cancellation of the request that started
	// it; each caller stops waiting on its own context instead.
	loadCtx := context.WithoutCancel(ctx)
	results := ds.loads.DoChan(today.String(), func() (any, error) {
		ctx, cancel := context.WithTimeout(loadCtx, loadTimeout)
		defer cancel()
		return ds.loadAndCache(ctx, today)
	})
	select {
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*entity.Dashboard), nil
	case <-ctx.Done():
		return nil, errors.New("loading dashboard error: " + ctx.Err().Error())
	}
}

// Invalidate drops the cached dashboard of day and detaches loads already in
// flight, so the next request recomputes from the store.
func (ds *DashboardService) Invalidate(ctx context.Context, day entity.Date) error {
	var err error
	if ds.cache != nil {
		err = ds.cache.Invalidate(ctx, day)
	}
	ds.loads.Forget(day.String())
	return err
}

func (ds *DashboardService) loadAndCache(ctx context.Context, today entity.Date) (*entity.Dashboard, error) {
	var generation int64
	cacheable := ds.cache != nil
	if cacheable {
		// Read before the store: a submission landing during the load bumps the
		// generation and the snapshot below is never served from the cache.
		g, err := ds.cache.Generation(ctx, today)
		if err != nil {
			slog.Warn("dashboard cache generation read failed", slog.String("error", err.Error()))
			cacheable = false
		}
		generation = g
	}
	dashboard, err := ds.load(ctx, today)
	if err != nil {
		return nil, err
	}
	if cacheable {
		if err = ds.cache.Set(ctx, dashboard, generation); err != nil {
			slog.Warn("dashboard cache write failed", slog.String("error", err.Error()))
		}
	}
	return dashboard, nil
}

func (ds *DashboardService) load(ctx context.Context, today entity.Date) (*entity.Dashboard, error) {
	athletes, err := ds.athletesRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	ids := make([]uuid.UUID, 0, len(athletes))
	for _, a := range athletes {
		ids = append(ids, a.ID)
	}
	checkIns, err := ds.checksRepo.ListByAthletes(ctx, ids)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	byAthlete := make(map[uuid.UUID][]entity.CheckIn, len(athletes))
	for _, c := range checkIns {
		byAthlete[c.AthleteID] = append(byAthlete[c.AthleteID], c)
	}

	fleet := make([]entity.AthleteWithCheckIns, 0, len(athletes))
	rows := make([]entity.DashboardRow, 0, len(athletes))
	for _, a := range athletes {
		member := entity.AthleteWithCheckIns{Athlete: a, CheckIns: byAthlete[a.ID]}
		fleet = append(fleet, member)
		row := entity.DashboardRow{
			Athlete: a,
			Status:  aggregation.ClassifyStatus(member, today),
			Link:    ds.link(a.Code),
		}
		if last, ok := aggregation.LastCheckIn(member.CheckIns); ok {
			row.LastCheckIn = &last
		}
		rows = append(rows, row)
	}
	return &entity.Dashboard{
		Date:     today,
		Stats:    aggregation.Summarize(fleet, today),
		Athletes: rows,
	}, nil
}

func (ds *DashboardService) link(code string) string {
	return ds.baseURL + "/" + url.PathEscape(code)
}
