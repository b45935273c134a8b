package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/pkg/entity"
)

type AthletesRepository struct {
	conn PgConnection
}

func NewAthletesRepoWithConn(conn PgConnection) *AthletesRepository {
	return &AthletesRepository{
		conn: conn,
	}
}

func (ar *AthletesRepository) FindByCode(ctx context.Context, code string) (*entity.Athlete, error) {
	var athlete entity.Athlete
	row := ar.conn.QueryRow(ctx, `SELECT id, code, name, sport, active FROM athletes WHERE code = $1;`, code)
	if err := row.Scan(&athlete.ID, &athlete.Code, &athlete.Name, &athlete.Sport, &athlete.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAthleteNotFound
		}
		return nil, errors.New("searching athlete by code error: " + err.Error())
	}
	return &athlete, nil
}

func (ar *AthletesRepository) ListActive(ctx context.Context) ([]entity.Athlete, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, code, name, sport, active FROM athletes WHERE active = TRUE ORDER BY name;`)
	if err != nil {
		return nil, errors.New("listing active athletes error: " + err.Error())
	}
	defer rows.Close()
	athletes := make([]entity.Athlete, 0)
	for rows.Next() {
		a := entity.Athlete{}
		if err = rows.Scan(&a.ID, &a.Code, &a.Name, &a.Sport, &a.Active); err != nil {
			return nil, errors.New("athlete row parsing error: " + err.Error())
		}
		athletes = append(athletes, a)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected athlete rows error: " + err.Error())
	}
	return athletes, nil
}
