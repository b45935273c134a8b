package calendar

import (
	"errors"
	"time"

	"github.com/limbo/wellness/pkg/entity"
)

// Calendar decides which calendar day "today" is. Services ask it once per
// request and pass the day down explicitly.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func New(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{
		loc: loc,
		now: time.Now,
	}
}

// FromName loads the location by IANA name ("UTC", "America/Sao_Paulo").
func FromName(name string) (*Calendar, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.New("loading timezone error: " + err.Error())
	}
	return New(loc), nil
}

// Fixed always reports the given instant. Used by tests.
func Fixed(at time.Time) *Calendar {
	c := New(at.Location())
	c.now = func() time.Time { return at }
	return c
}

func (c *Calendar) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Calendar) Today() entity.Date {
	return entity.DateOf(c.Now())
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}
