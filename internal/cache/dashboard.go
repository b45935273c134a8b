// Package cache keeps computed coach dashboards in Redis for a short time.
// Entries are keyed by calendar day and dropped on every submission of that day.
package cache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	goredis "github.com/redis/go-redis/v9"

	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/pkg/cleanup"
	"github.com/limbo/wellness/pkg/entity"
)

const (
	keyPrefix        = "wellness"
	dashboardPrefix  = "dashboard"
	generationSuffix = "gen"

	// Generations outlive any dashboard of their day.
	generationTTL = 48 * time.Hour
)

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
}

type DashboardCache struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewRedisClient connects and pings Redis, registering the client for cleanup.
func NewRedisClient(ctx context.Context, cfg RedisCfg) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		MaxRetries:   3,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.New("pinging redis error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return client, nil
}

func NewDashboardCache(client goredis.Cmdable, ttl time.Duration) *DashboardCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &DashboardCache{
		client: client,
		ttl:    ttl,
	}
}

func Key(parts ...string) string {
	return keyPrefix + ":" + strings.Join(parts, ":")
}

func dashboardKey(day entity.Date) string {
	return Key(dashboardPrefix, day.String())
}

func generationKey(day entity.Date) string {
	return Key(dashboardPrefix, day.String(), generationSuffix)
}

// cachedDashboard is the stored payload: the dashboard and the generation of
// its day at the moment its load started.
type cachedDashboard struct {
	Generation int64             `json:"generation"`
	Dashboard  *entity.Dashboard `json:"dashboard"`
}

// Generation returns the current generation of day, 0 before any invalidation.
func (c *DashboardCache) Generation(ctx context.Context, day entity.Date) (int64, error) {
	generation, err := c.client.Get(ctx, generationKey(day)).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, errors.New("reading dashboard generation error: " + err.Error())
	}
	return generation, nil
}

// Get returns errorvalues.ErrCacheMiss when nothing is stored for the day or
// when the stored dashboard belongs to an older generation.
func (c *DashboardCache) Get(ctx context.Context, day entity.Date) (*entity.Dashboard, error) {
	values, err := c.client.MGet(ctx, dashboardKey(day), generationKey(day)).Result()
	if err != nil {
		return nil, errors.New("reading cached dashboard error: " + err.Error())
	}
	payload, ok := values[0].(string)
	if !ok {
		return nil, errorvalues.ErrCacheMiss
	}
	var current int64
	if raw, ok := values[1].(string); ok {
		if current, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, errors.New("parsing dashboard generation error: " + err.Error())
		}
	}
	var cached cachedDashboard
	if err = sonic.UnmarshalString(payload, &cached); err != nil {
		return nil, errors.New("decoding cached dashboard error: " + err.Error())
	}
	if cached.Generation != current || cached.Dashboard == nil {
		return nil, errorvalues.ErrCacheMiss
	}
	return cached.Dashboard, nil
}

func (c *DashboardCache) Set(ctx context.Context, dashboard *entity.Dashboard, generation int64) error {
	data, err := sonic.Marshal(cachedDashboard{Generation: generation, Dashboard: dashboard})
	if err != nil {
		return errors.New("encoding dashboard error: " + err.Error())
	}
	if err = c.client.Set(ctx, dashboardKey(dashboard.Date), data, c.ttl).Err(); err != nil {
		return errors.New("caching dashboard error: " + err.Error())
	}
	return nil
}

// Invalidate bumps the day's generation, which outdates the stored dashboard
// and any snapshot still being computed.
func (c *DashboardCache) Invalidate(ctx context.Context, day entity.Date) error {
	key := generationKey(day)
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return errors.New("invalidating dashboard error: " + err.Error())
	}
	if err := c.client.Expire(ctx, key, generationTTL).Err(); err != nil {
		return errors.New("expiring dashboard generation error: " + err.Error())
	}
	return nil
}

// Noop is used when no Redis address is configured: every read misses.
type Noop struct{}

func (Noop) Generation(context.Context, entity.Date) (int64, error) {
	return 0, nil
}

func (Noop) Get(context.Context, entity.Date) (*entity.Dashboard, error) {
	return nil, errorvalues.ErrCacheMiss
}

func (Noop) Set(context.Context, *entity.Dashboard, int64) error {
	return nil
}

func (Noop) Invalidate(context.Context, entity.Date) error {
	return nil
}
