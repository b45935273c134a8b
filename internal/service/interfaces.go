package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/wellness/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/limbo/wellness/internal/service CheckInsServiceI,DashboardServiceI

type SaveCheckInRequest struct {
	Energy int `json:"energy" validate:"required,min=1,max=10"`
	Mood   int `json:"mood" validate:"required,min=1,max=10"`
}

type CheckInsServiceI interface {
	// Finds athlete by code together with check-ins ordered by date
	GetAthleteData(ctx context.Context, code string) (*entity.AthleteWithCheckIns, error)
	// Builds athlete's check-in view for today
	GetAthleteView(ctx context.Context, code string) (*entity.AthleteView, error)
	// Validates scores and upserts today's check-in of athlete
	SaveCheckIn(ctx context.Context, athleteID uuid.UUID, req *SaveCheckInRequest) (*entity.CheckIn, error)
	// Resolves athlete by code, saves today's check-in and returns the refreshed view
	Submit(ctx context.Context, code string, req *SaveCheckInRequest) (*entity.AthleteView, error)
}

type DashboardServiceI interface {
	// Lists active athletes with status and fleet statistics for today
	GetDashboard(ctx context.Context) (*entity.Dashboard, error)
}

// DashboardInvalidatorI is told about every stored check-in so the day's
// dashboard is recomputed.
type DashboardInvalidatorI interface {
	Invalidate(ctx context.Context, day entity.Date) error
}

// DashboardCacheI stores computed dashboards per day. Each day has a generation
// that Invalidate bumps; Get only returns a dashboard stored under the current one.
type DashboardCacheI interface {
	Generation(ctx context.Context, day entity.Date) (int64, error)
	Get(ctx context.Context, day entity.Date) (*entity.Dashboard, error)
	Set(ctx context.Context, dashboard *entity.Dashboard, generation int64) error
	Invalidate(ctx context.Context, day entity.Date) error
}
