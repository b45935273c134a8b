package repository

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/limbo/wellness/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/limbo/wellness/internal/repository AthletesRepositoryI,CheckInsRepositoryI

type AthletesRepositoryI interface {
	// Looks up athlete by its shareable code
	FindByCode(ctx context.Context, code string) (*entity.Athlete, error)
	// Lists active athletes ordered by name
	ListActive(ctx context.Context) ([]entity.Athlete, error)
}

type CheckInsRepositoryI interface {
	// Inserts check-in or overwrites the one of the same athlete and date. Returns stored row
	Upsert(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error)
	// Lists athlete's check-ins ordered by date ascending
	ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]entity.CheckIn, error)
	// Lists check-ins of several athletes ordered by date ascending
	ListByAthletes(ctx context.Context, athleteIDs []uuid.UUID) ([]entity.CheckIn, error)
}

type DBConfig interface {
	ConnString() (string, error)
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGCfg describes the store: a postgres URL and the access key used as its password.
type PGCfg struct {
	URL string
	Key string
}

func (pgcfg *PGCfg) ConnString() (string, error) {
	u, err := url.Parse(pgcfg.URL)
	if err != nil {
		return "", errors.New("parsing store url error: " + err.Error())
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", errors.New("store url must use postgres scheme")
	}
	if pgcfg.Key != "" {
		username := "postgres"
		if u.User != nil && u.User.Username() != "" {
			username = u.User.Username()
		}
		u.User = url.UserPassword(username, pgcfg.Key)
	}
	return u.String(), nil
}
