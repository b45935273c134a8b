package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/limbo/wellness/internal/aggregation"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/pkg/calendar"
	"github.com/limbo/wellness/pkg/entity"
)

type codeParam struct {
	Code string `validate:"required,athlete_code"`
}

type CheckInsService struct {
	athletesRepo repository.AthletesRepositoryI
	checksRepo   repository.CheckInsRepositoryI
	calendar     *calendar.Calendar
	dashboard    DashboardInvalidatorI
	locale       aggregation.Locale
}

// NewCheckInsService wires the athlete side of the app. dashboard is notified
// of every stored check-in and may be nil.
func NewCheckInsService(
	athletesRepo repository.AthletesRepositoryI,
	checksRepo repository.CheckInsRepositoryI,
	cal *calendar.Calendar,
	dashboard DashboardInvalidatorI,
	locale aggregation.Locale,
) *CheckInsService {
	if athletesRepo == nil || checksRepo == nil {
		log.Fatal("on check-ins service provided nil repos")
	}
	if cal == nil {
		cal = calendar.New(nil)
	}
	return &CheckInsService{
		athletesRepo: athletesRepo,
		checksRepo:   checksRepo,
		calendar:     cal,
		dashboard:    dashboard,
		locale:       locale,
	}
}

func (serv *CheckInsService) GetAthleteData(ctx context.Context, code string) (*entity.AthleteWithCheckIns, error) {
	if err := validateStruct(codeParam{Code: code}); err != nil {
		return nil, errorvalues.ErrAthleteNotFound
	}
	athlete, err := serv.athletesRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAthleteNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	checkIns, err := serv.checksRepo.ListByAthlete(ctx, athlete.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entity.AthleteWithCheckIns{
		Athlete:  *athlete,
		CheckIns: checkIns,
	}, nil
}

func (serv *CheckInsService) GetAthleteView(ctx context.Context, code string) (*entity.AthleteView, error) {
	data, err := serv.GetAthleteData(ctx, code)
	if err != nil {
		return nil, err
	}
	return serv.buildView(data, serv.calendar.Today()), nil
}

func (serv *CheckInsService) SaveCheckIn(ctx context.Context, athleteID uuid.UUID, req *SaveCheckInRequest) (*entity.CheckIn, error) {
	if req == nil || validateStruct(req) != nil {
		return nil, errorvalues.ErrInvalidScores
	}
	now := serv.calendar.Now()
	today := entity.DateOf(now)
	stored, err := serv.checksRepo.Upsert(ctx, &entity.CheckIn{
		AthleteID: athleteID,
		Date:      today,
		Energy:    req.Energy,
		Mood:      req.Mood,
		Timestamp: now.UTC(),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrAthleteNotFound) || errors.Is(err, errorvalues.ErrInvalidScores) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if serv.dashboard != nil {
		if err = serv.dashboard.Invalidate(ctx, today); err != nil {
			slog.Warn("dashboard invalidation failed", slog.String("error", err.Error()))
		}
	}
	return stored, nil
}

// Submit saves today's check-in and returns the athlete view including it,
// so the caller does not need to reload the history.
func (serv *CheckInsService) Submit(ctx context.Context, code string, req *SaveCheckInRequest) (*entity.AthleteView, error) {
	if req == nil || validateStruct(req) != nil {
		return nil, errorvalues.ErrInvalidScores
	}
	data, err := serv.GetAthleteData(ctx, code)
	if err != nil {
		return nil, err
	}
	stored, err := serv.SaveCheckIn(ctx, data.ID, req)
	if err != nil {
		return nil, err
	}
	data.CheckIns = aggregation.WithCheckIn(data.CheckIns, *stored)
	return serv.buildView(data, stored.Date), nil
}

func (serv *CheckInsService) buildView(data *entity.AthleteWithCheckIns, today entity.Date) *entity.AthleteView {
	view := &entity.AthleteView{
		Athlete:       data.Athlete,
		Date:          today,
		Status:        aggregation.ClassifyStatus(*data, today),
		Series:        slices.Collect(aggregation.BuildSeries(aggregation.Latest(data.CheckIns, aggregation.SeriesLength), serv.locale)),
		AverageEnergy: aggregation.AverageOverWindow(data.CheckIns, aggregation.FieldEnergy, entity.Date{}),
		AverageMood:   aggregation.AverageOverWindow(data.CheckIns, aggregation.FieldMood, entity.Date{}),
		TotalCheckIns: len(data.CheckIns),
	}
	if view.Series == nil {
		view.Series = []entity.SeriesPoint{}
	}
	if c, ok := aggregation.TodayCheckIn(data.CheckIns, today); ok {
		view.Today = &c
	}
	return view
}
