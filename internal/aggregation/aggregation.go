// Package aggregation turns raw check-in records into the values shown on the
// athlete and coach views. Every function takes "today" explicitly and none of
// them touch the store or the clock.
package aggregation

import (
	"iter"
	"math"
	"slices"

	"github.com/limbo/wellness/pkg/entity"
)

const (
	// DashboardWindowDays is the trailing window of the coach statistics, today included.
	DashboardWindowDays = 7
	// SeriesLength is how many of the latest check-ins the athlete chart shows.
	SeriesLength = 14
)

type Field int

const (
	FieldEnergy Field = iota
	FieldMood
)

func (f Field) value(c entity.CheckIn) int {
	if f == FieldMood {
		return c.Mood
	}
	return c.Energy
}

func HasCheckedInToday(checkins []entity.CheckIn, today entity.Date) bool {
	_, ok := TodayCheckIn(checkins, today)
	return ok
}

// TodayCheckIn returns the check-in recorded for today, if any.
func TodayCheckIn(checkins []entity.CheckIn, today entity.Date) (entity.CheckIn, bool) {
	for _, c := range checkins {
		if c.Date.Equal(today) {
			return c, true
		}
	}
	return entity.CheckIn{}, false
}

// AverageOverWindow averages field over the check-ins dated windowStart or
// later, rounded to one decimal. A zero windowStart takes the whole history.
// Returns 0 when nothing qualifies.
func AverageOverWindow(checkins []entity.CheckIn, field Field, windowStart entity.Date) float64 {
	sum, n := 0, 0
	for _, c := range checkins {
		if c.Date.Before(windowStart) {
			continue
		}
		sum += field.value(c)
		n++
	}
	if n == 0 {
		return 0
	}
	return roundOneDecimal(float64(sum) / float64(n))
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// TrailingWindowStart is the first day of a window of days calendar days ending at today.
func TrailingWindowStart(today entity.Date, days int) entity.Date {
	if days < 1 {
		days = 1
	}
	return today.AddDays(-(days - 1))
}

// BuildSeries yields chart points in ascending date order. The input is
// copied up front so the sequence can be ranged over any number of times.
func BuildSeries(checkins []entity.CheckIn, locale Locale) iter.Seq[entity.SeriesPoint] {
	sorted := sortedByDate(checkins)
	return func(yield func(entity.SeriesPoint) bool) {
		for _, c := range sorted {
			p := entity.SeriesPoint{
				Date:   c.Date,
				Energy: c.Energy,
				Mood:   c.Mood,
				Day:    locale.ShortWeekday(c.Date.Weekday()),
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Latest returns the n most recent check-ins, oldest first.
func Latest(checkins []entity.CheckIn, n int) []entity.CheckIn {
	sorted := sortedByDate(checkins)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

func LastCheckIn(checkins []entity.CheckIn) (entity.CheckIn, bool) {
	var (
		last  entity.CheckIn
		found bool
	)
	for _, c := range checkins {
		if !found || c.Date.After(last.Date) {
			last = c
			found = true
		}
	}
	return last, found
}

func ClassifyStatus(athlete entity.AthleteWithCheckIns, today entity.Date) entity.Status {
	if HasCheckedInToday(athlete.CheckIns, today) {
		return entity.StatusCompleted
	}
	return entity.StatusPending
}

// Summarize reduces a fleet of athletes to the coach statistics. Averages cover
// every check-in of the fleet inside the trailing DashboardWindowDays window.
func Summarize(athletes []entity.AthleteWithCheckIns, today entity.Date) entity.DashboardStats {
	stats := entity.DashboardStats{Total: len(athletes)}
	all := make([]entity.CheckIn, 0, len(athletes))
	for _, a := range athletes {
		if ClassifyStatus(a, today) == entity.StatusCompleted {
			stats.CompletedToday++
		}
		all = append(all, a.CheckIns...)
	}
	stats.Pending = stats.Total - stats.CompletedToday

	windowStart := TrailingWindowStart(today, DashboardWindowDays)
	stats.AverageEnergy = AverageOverWindow(all, FieldEnergy, windowStart)
	stats.AverageMood = AverageOverWindow(all, FieldMood, windowStart)
	return stats
}

func sortedByDate(checkins []entity.CheckIn) []entity.CheckIn {
	sorted := slices.Clone(checkins)
	slices.SortStableFunc(sorted, func(a, b entity.CheckIn) int {
		return a.Date.Time().Compare(b.Date.Time())
	})
	return sorted
}

// WithCheckIn returns a copy of checkins where c replaces the record of the
// same day, or is added, keeping ascending date order.
func WithCheckIn(checkins []entity.CheckIn, c entity.CheckIn) []entity.CheckIn {
	merged := make([]entity.CheckIn, 0, len(checkins)+1)
	for _, existing := range checkins {
		if existing.Date.Equal(c.Date) {
			continue
		}
		merged = append(merged, existing)
	}
	return sortedByDate(append(merged, c))
}
