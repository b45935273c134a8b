package service_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/wellness/internal/aggregation"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/internal/repository/mocks"
	"github.com/limbo/wellness/internal/service"
	"github.com/limbo/wellness/pkg/calendar"
	"github.com/limbo/wellness/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mayFirst = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	ana      = entity.Athlete{ID: uuid.New(), Code: "ana-01", Name: "Ana", Sport: "swimming", Active: true}
)

func TestSubmitScenario(t *testing.T) {
	store := newMemStore(ana)
	serv := service.NewCheckInsService(store, store, calendar.Fixed(mayFirst), nil, aggregation.LocaleES)
	ctx := context.Background()

	view, err := serv.Submit(ctx, "ana-01", &service.SaveCheckInRequest{Energy: 9, Mood: 8})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, view.Status)
	require.NotNil(t, view.Today)
	assert.Equal(t, 9, view.Today.Energy)

	data, err := serv.GetAthleteData(ctx, "ana-01")
	require.NoError(t, err)
	require.Len(t, data.CheckIns, 1)
	assert.Equal(t, "2024-05-01", data.CheckIns[0].Date.String())
	assert.Equal(t, 9, data.CheckIns[0].Energy)
	assert.Equal(t, 8, data.CheckIns[0].Mood)
	assert.Equal(t, entity.StatusCompleted, aggregation.ClassifyStatus(*data, entity.MustParseDate("2024-05-01")))
}

func TestSaveCheckInIsIdempotentPerDay(t *testing.T) {
	store := newMemStore(ana)
	cache := newMemCache()
	serv := service.NewCheckInsService(store, store, calendar.Fixed(mayFirst), cache, aggregation.LocaleES)
	ctx := context.Background()

	_, err := serv.SaveCheckIn(ctx, ana.ID, &service.SaveCheckInRequest{Energy: 7, Mood: 8})
	require.NoError(t, err)
	stored, err := serv.SaveCheckIn(ctx, ana.ID, &service.SaveCheckInRequest{Energy: 3, Mood: 4})
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Energy)

	assert.Equal(t, 1, store.rows())
	list, err := store.ListByAthlete(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].Energy)
	assert.Equal(t, 4, list[0].Mood)
	assert.Equal(t, mayFirst, list[0].Timestamp)
	assert.Len(t, cache.invalidated, 2)
}

func TestAthleteView(t *testing.T) {
	store := newMemStore(ana)
	ctx := context.Background()
	serv := service.NewCheckInsService(store, store, calendar.Fixed(mayFirst), nil, aggregation.LocaleES)

	t.Run("pending without check-ins", func(t *testing.T) {
		view, err := serv.GetAthleteView(ctx, "ana-01")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, view.Status)
		assert.Nil(t, view.Today)
		assert.Empty(t, view.Series)
		assert.NotNil(t, view.Series)
		assert.Equal(t, float64(0), view.AverageEnergy)
	})

	for i := 20; i >= 1; i-- {
		day := entity.DateOf(mayFirst).AddDays(-i)
		_, err := store.Upsert(ctx, &entity.CheckIn{AthleteID: ana.ID, Date: day, Energy: i%10 + 1, Mood: 5, Timestamp: mayFirst})
		require.NoError(t, err)
	}

	t.Run("history without today", func(t *testing.T) {
		view, err := serv.GetAthleteView(ctx, "ana-01")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, view.Status)
		assert.Equal(t, 20, view.TotalCheckIns)
		require.Len(t, view.Series, aggregation.SeriesLength)
		assert.Equal(t, "2024-04-17", view.Series[0].Date.String())
		assert.Equal(t, "2024-04-30", view.Series[13].Date.String())
		assert.Equal(t, "mar", view.Series[13].Day)
		assert.Equal(t, 5.5, view.AverageEnergy)
		assert.Equal(t, float64(5), view.AverageMood)
	})

	t.Run("submission shows up immediately", func(t *testing.T) {
		view, err := serv.Submit(ctx, "ana-01", &service.SaveCheckInRequest{Energy: 10, Mood: 10})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, view.Status)
		assert.Equal(t, 21, view.TotalCheckIns)
		assert.Equal(t, "2024-05-01", view.Series[len(view.Series)-1].Date.String())
	})
}

func TestSubmitValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	athletesRepo := mocks.NewMockAthletesRepositoryI(ctrl)
	checksRepo := mocks.NewMockCheckInsRepositoryI(ctrl)
	serv := service.NewCheckInsService(athletesRepo, checksRepo, calendar.Fixed(mayFirst), nil, aggregation.LocaleES)
	testCases := []struct {
		Desc string
		Req  *service.SaveCheckInRequest
	}{
		{Desc: "nil request", Req: nil},
		{Desc: "missing energy", Req: &service.SaveCheckInRequest{Mood: 5}},
		{Desc: "missing mood", Req: &service.SaveCheckInRequest{Energy: 5}},
		{Desc: "energy too high", Req: &service.SaveCheckInRequest{Energy: 11, Mood: 5}},
		{Desc: "negative mood", Req: &service.SaveCheckInRequest{Energy: 5, Mood: -1}},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := serv.Submit(ctx, "ana-01", tc.Req)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidScores)
			_, err = serv.SaveCheckIn(ctx, ana.ID, tc.Req)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidScores)
		})
	}
}

func TestGetAthleteData(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	athletesRepo := mocks.NewMockAthletesRepositoryI(ctrl)
	checksRepo := mocks.NewMockCheckInsRepositoryI(ctrl)
	serv := service.NewCheckInsService(athletesRepo, checksRepo, calendar.Fixed(mayFirst), nil, aggregation.LocaleES)
	testCases := []struct {
		Desc         string
		Code         string
		Error        error
		ErrorText    string
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			Code: ana.Code,
			MockPrepFunc: func() {
				athletesRepo.EXPECT().FindByCode(gomock.Any(), ana.Code).Return(&ana, nil)
				checksRepo.EXPECT().ListByAthlete(gomock.Any(), ana.ID).Return([]entity.CheckIn{}, nil)
			},
		},
		{
			Desc:  "error athlete not found",
			Code:  "nobody",
			Error: errorvalues.ErrAthleteNotFound,
			MockPrepFunc: func() {
				athletesRepo.EXPECT().FindByCode(gomock.Any(), "nobody").Return(nil, errorvalues.ErrAthleteNotFound)
			},
		},
		{
			Desc:         "malformed code never reaches the store",
			Code:         "../admin",
			Error:        errorvalues.ErrAthleteNotFound,
			MockPrepFunc: func() {},
		},
		{
			Desc:      "error finding athlete",
			Code:      ana.Code,
			ErrorText: "repository error: db error",
			MockPrepFunc: func() {
				athletesRepo.EXPECT().FindByCode(gomock.Any(), ana.Code).Return(nil, errors.New("db error"))
			},
		},
		{
			Desc:      "error listing check-ins",
			Code:      ana.Code,
			ErrorText: "repository error: db error",
			MockPrepFunc: func() {
				athletesRepo.EXPECT().FindByCode(gomock.Any(), ana.Code).Return(&ana, nil)
				checksRepo.EXPECT().ListByAthlete(gomock.Any(), ana.ID).Return(nil, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			data, err := serv.GetAthleteData(ctx, tc.Code)
			switch {
			case tc.Error != nil:
				assert.ErrorIs(t, err, tc.Error)
			case tc.ErrorText != "":
				assert.EqualError(t, err, tc.ErrorText)
			default:
				require.NoError(t, err)
				assert.Equal(t, ana, data.Athlete)
			}
		})
	}
}

func TestSaveCheckInErrors(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	athletesRepo := mocks.NewMockAthletesRepositoryI(ctrl)
	checksRepo := mocks.NewMockCheckInsRepositoryI(ctrl)
	serv := service.NewCheckInsService(athletesRepo, checksRepo, calendar.Fixed(mayFirst), nil, aggregation.LocaleES)
	req := &service.SaveCheckInRequest{Energy: 6, Mood: 7}
	expected := &entity.CheckIn{AthleteID: ana.ID, Date: entity.DateOf(mayFirst), Energy: 6, Mood: 7, Timestamp: mayFirst}
	testCases := []struct {
		Desc         string
		Error        error
		ErrorText    string
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			MockPrepFunc: func() {
				checksRepo.EXPECT().Upsert(gomock.Any(), expected).Return(expected, nil)
			},
		},
		{
			Desc:  "error athlete removed",
			Error: errorvalues.ErrAthleteNotFound,
			MockPrepFunc: func() {
				checksRepo.EXPECT().Upsert(gomock.Any(), expected).Return(nil, errorvalues.ErrAthleteNotFound)
			},
		},
		{
			Desc:      "error store failure",
			ErrorText: "repository error: connection refused",
			MockPrepFunc: func() {
				checksRepo.EXPECT().Upsert(gomock.Any(), expected).Return(nil, errors.New("connection refused"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			stored, err := serv.SaveCheckIn(ctx, ana.ID, req)
			switch {
			case tc.Error != nil:
				assert.ErrorIs(t, err, tc.Error)
			case tc.ErrorText != "":
				assert.EqualError(t, err, tc.ErrorText)
			default:
				require.NoError(t, err)
				assert.Equal(t, expected, stored)
			}
		})
	}
}

func TestSubmitUnknownAthlete(t *testing.T) {
	store := newMemStore(ana)
	serv := service.NewCheckInsService(store, store, calendar.Fixed(mayFirst), nil, aggregation.LocaleES)
	_, err := serv.Submit(context.Background(), "ghost-99", &service.SaveCheckInRequest{Energy: 5, Mood: 5})
	assert.ErrorIs(t, err, errorvalues.ErrAthleteNotFound)
	assert.Equal(t, 0, store.rows())
}

func TestIsValidCode(t *testing.T) {
	testCases := []struct {
		Desc  string
		Code  string
		Valid bool
	}{
		{Desc: "hyphenated", Code: "ana-01", Valid: true},
		{Desc: "underscore", Code: "Bruno_2", Valid: true},
		{Desc: "longest", Code: strings.Repeat("a", 64), Valid: true},
		{Desc: "empty", Code: ""},
		{Desc: "leading hyphen", Code: "-ana"},
		{Desc: "space", Code: "ana 01"},
		{Desc: "slash", Code: "ana/01"},
		{Desc: "dot", Code: "ana.01"},
		{Desc: "non ascii letter", Code: "josé"},
		{Desc: "too long", Code: strings.Repeat("a", 65)},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Valid, service.IsValidCode(tc.Code))
		})
	}
}

// Codes that pass IsValidCode are exactly the ones the athletes table accepts.
func TestCodePatternMatchesSchema(t *testing.T) {
	schema, err := os.ReadFile("../../migrations/00001_init.sql")
	require.NoError(t, err)
	assert.Contains(t, string(schema), "CHECK (code ~ '"+service.CodePattern+"')")
}
