package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/pkg/entity"
)

type CheckInsRepository struct {
	conn PgConnection
}

func NewCheckInsRepoWithConn(conn PgConnection) *CheckInsRepository {
	return &CheckInsRepository{
		conn: conn,
	}
}

// Upsert relies on the (athlete_id, date) primary key: a second submission on
// the same day replaces scores and timestamp of the first one.
func (cr *CheckInsRepository) Upsert(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error) {
	if checkIn == nil {
		return nil, errors.New("check-in is nil")
	}
	var stored entity.CheckIn
	row := cr.conn.QueryRow(
		ctx,
		`INSERT INTO checkins (athlete_id, date, energy, mood, timestamp) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (athlete_id, date) DO UPDATE SET energy = EXCLUDED.energy, mood = EXCLUDED.mood, timestamp = EXCLUDED.timestamp
		RETURNING athlete_id, date, energy, mood, timestamp;`,
		checkIn.AthleteID,
		checkIn.Date,
		checkIn.Energy,
		checkIn.Mood,
		checkIn.Timestamp,
	)
	err := row.Scan(&stored.AthleteID, &stored.Date, &stored.Energy, &stored.Mood, &stored.Timestamp)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrAthleteNotFound
			// Check violation
			case "23514":
				return nil, errorvalues.ErrInvalidScores
			}
		}
		return nil, errors.New("upserting check-in error: " + err.Error())
	}
	return &stored, nil
}

func (cr *CheckInsRepository) ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]entity.CheckIn, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT athlete_id, date, energy, mood, timestamp FROM checkins WHERE athlete_id = $1 ORDER BY date ASC;`,
		athleteID,
	)
	if err != nil {
		return nil, errors.New("getting athlete check-ins error: " + err.Error())
	}
	return collectCheckIns(rows)
}

func (cr *CheckInsRepository) ListByAthletes(ctx context.Context, athleteIDs []uuid.UUID) ([]entity.CheckIn, error) {
	if len(athleteIDs) == 0 {
		return []entity.CheckIn{}, nil
	}
	rows, err := cr.conn.Query(
		ctx,
		`SELECT athlete_id, date, energy, mood, timestamp FROM checkins WHERE athlete_id = ANY($1) ORDER BY date ASC;`,
		athleteIDs,
	)
	if err != nil {
		return nil, errors.New("getting fleet check-ins error: " + err.Error())
	}
	return collectCheckIns(rows)
}

func collectCheckIns(rows pgx.Rows) ([]entity.CheckIn, error) {
	defer rows.Close()
	result := make([]entity.CheckIn, 0)
	for rows.Next() {
		c := entity.CheckIn{}
		if err := rows.Scan(&c.AthleteID, &c.Date, &c.Energy, &c.Mood, &c.Timestamp); err != nil {
			return nil, errors.New("check-in row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected check-in rows error: " + err.Error())
	}
	return result, nil
}
