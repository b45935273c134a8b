package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/wellness/pkg/cleanup"
)

// Connect opens the process-wide pool, checks it answers and registers its
// closing as a cleanup job.
func Connect(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	connString, err := cfg.ConnString()
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("pinging store error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	slog.Info("store connected")
	return pool, nil
}
