package service

import (
	"time"

	"github.com/limbo/rehabit/internal/progress"
)

// Clock tells services what the user's calendar says right now.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{
		loc: loc,
		now: time.Now,
	}
}

// FixedClock always reports t. Used by tests and batch recomputation.
func FixedClock(t time.Time) *Clock {
	return &Clock{
		loc: t.Location(),
		now: func() time.Time { return t },
	}
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) Today() time.Time {
	return progress.DayKey(c.Now())
}

// Day buckets an instant into the calendar day it falls on in the clock's location.
func (c *Clock) Day(t time.Time) time.Time {
	return progress.DayKey(t.In(c.loc))
}

func (c *Clock) Location() *time.Location {
	return c.loc
}
