package challenge

import (
	"time"

	"github.com/limbo/rehabit/internal/progress"
	"github.com/limbo/rehabit/pkg/entity"
)

const (
	KindHabitsCompletedToday = "habits_completed_today"
	KindHabitStreak          = "habit_streak"
	KindHabitsCreated        = "habits_created"
	KindLevel                = "level"
	KindTotalXP              = "total_xp"
	KindHabitCompletions     = "habit_completions"
)

type Predicate struct {
	Kind      string `yaml:"kind"`
	Threshold int    `yaml:"threshold"`
}

// Snapshot is the user state a predicate is checked against.
// Now must carry the user's calendar location.
type Snapshot struct {
	User   *entity.User
	Habits []*entity.Habit
	Now    time.Time
}

func (p Predicate) known() bool {
	switch p.Kind {
	case KindHabitsCompletedToday, KindHabitStreak, KindHabitsCreated,
		KindLevel, KindTotalXP, KindHabitCompletions:
		return true
	}
	return false
}

// Measure returns the current value the threshold is compared to.
func (p Predicate) Measure(s Snapshot) int {
	switch p.Kind {
	case KindHabitsCompletedToday:
		today := progress.DayKey(s.Now)
		count := 0
		for _, h := range s.Habits {
			for _, d := range h.CompletedDates {
				if progress.DayKey(d).Equal(today) {
					count++
					break
				}
			}
		}
		return count
	case KindHabitStreak:
		best := 0
		for _, h := range s.Habits {
			best = max(best, h.Streak)
		}
		return best
	case KindHabitsCreated:
		return len(s.Habits)
	case KindLevel:
		if s.User == nil {
			return 1
		}
		return progress.Level(s.User.XP)
	case KindTotalXP:
		if s.User == nil {
			return 0
		}
		return s.User.XP
	case KindHabitCompletions:
		best := 0
		for _, h := range s.Habits {
			best = max(best, len(progress.Days(h.CompletedDates)))
		}
		return best
	}
	return 0
}

func (p Predicate) Holds(s Snapshot) bool {
	return p.known() && p.Measure(s) >= p.Threshold
}

// Progress is the measure relative to the threshold in percent, capped at 100.
func (p Predicate) Progress(s Snapshot) int {
	if p.Threshold <= 0 {
		return 100
	}
	return min(100, p.Measure(s)*100/p.Threshold)
}
