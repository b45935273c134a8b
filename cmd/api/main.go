// @title Athlete wellness API
// @description Daily energy and mood check-ins for athletes and a dashboard for their coach
// @BasePath /
// @schemes http
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/wellness/internal/aggregation"
	"github.com/limbo/wellness/internal/api"
	"github.com/limbo/wellness/internal/cache"
	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/internal/service"
	"github.com/limbo/wellness/pkg/calendar"
	"github.com/limbo/wellness/pkg/cleanup"
	"github.com/limbo/wellness/pkg/config"
	"github.com/limbo/wellness/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat))
	os.Exit(start(cfg))
}

// start runs the app and then the cleanup jobs, whatever run returned.
func start(cfg *config.Config) int {
	err := run(cfg)
	cleanup.CleanUp()
	if err != nil {
		slog.Error("wellness api stopped", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

// run wires the app and serves until a shutdown signal. Resources it opens
// register cleanup jobs that main runs afterwards, on success and on error.
func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cal, err := calendar.FromName(cfg.Timezone)
	if err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	pool, err := repository.Connect(startCtx, &repository.PGCfg{
		URL: cfg.StoreURL,
		Key: cfg.StoreKey,
	})
	if err != nil {
		return errors.New("store connection failed: " + err.Error())
	}
	athletesRepo := repository.NewAthletesRepoWithConn(pool)
	checksRepo := repository.NewCheckInsRepoWithConn(pool)

	var dashboardCache service.DashboardCacheI = cache.Noop{}
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(startCtx, cache.RedisCfg{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			slog.Warn("dashboard cache disabled", slog.String("error", err.Error()))
		} else {
			dashboardCache = cache.NewDashboardCache(client, cfg.DashboardCacheTTL)
		}
	}

	dashboardService := service.NewDashboardService(athletesRepo, checksRepo, cal, dashboardCache, cfg.PublicBaseURL)
	checkInsService := service.NewCheckInsService(athletesRepo, checksRepo, cal, dashboardService, aggregation.ParseLocale(cfg.LabelLocale))
	serv := api.New(&api.ServicesList{
		CheckInsService:  checkInsService,
		DashboardService: dashboardService,
	})
	slog.Info("starting wellness api",
		slog.String("timezone", cal.Location().String()),
		slog.Bool("cache", cfg.RedisAddr != ""),
	)
	return serv.Run(ctx, cfg.APIAddress)
}
