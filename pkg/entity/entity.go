package entity

import (
	"time"

	"github.com/google/uuid"
)

type Athlete struct {
	ID     uuid.UUID `json:"id"`
	Code   string    `json:"code"`
	Name   string    `json:"name"`
	Sport  string    `json:"sport"`
	Active bool      `json:"active"`
}

type CheckIn struct {
	AthleteID uuid.UUID `json:"athlete_id"`
	Date      Date      `json:"date"`
	Energy    int       `json:"energy"`
	Mood      int       `json:"mood"`
	Timestamp time.Time `json:"timestamp"`
}

// AthleteWithCheckIns is an athlete together with its check-ins in ascending date order.
type AthleteWithCheckIns struct {
	Athlete
	CheckIns []CheckIn `json:"checkins"`
}

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

type SeriesPoint struct {
	Date   Date   `json:"date"`
	Energy int    `json:"energy"`
	Mood   int    `json:"mood"`
	Day    string `json:"day"`
}

type DashboardStats struct {
	Total          int     `json:"total"`
	CompletedToday int     `json:"completed_today"`
	Pending        int     `json:"pending"`
	AverageEnergy  float64 `json:"average_energy"`
	AverageMood    float64 `json:"average_mood"`
}

type DashboardRow struct {
	Athlete     Athlete  `json:"athlete"`
	Status      Status   `json:"status"`
	LastCheckIn *CheckIn `json:"last_checkin"`
	Link        string   `json:"link"`
}

type Dashboard struct {
	Date     Date           `json:"date"`
	Stats    DashboardStats `json:"stats"`
	Athletes []DashboardRow `json:"athletes"`
}

type AthleteView struct {
	Athlete       Athlete       `json:"athlete"`
	Date          Date          `json:"date"`
	Status        Status        `json:"status"`
	Today         *CheckIn      `json:"today,omitempty"`
	Series        []SeriesPoint `json:"series"`
	AverageEnergy float64       `json:"average_energy"`
	AverageMood   float64       `json:"average_mood"`
	TotalCheckIns int           `json:"total_checkins"`
}
