package progress

import (
	"sort"
	"time"

	"github.com/limbo/rehabit/pkg/entity"
)

// PerfectRunWindow bounds how many daily snapshots are scanned for a perfect-day run.
const PerfectRunWindow = 30

// DayKey maps t to its calendar day as read in t's own location.
// Keys are UTC midnights so they compare equal to DATE columns scanned by pgx.
func DayKey(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Days returns distinct calendar days of dates, most recent first.
func Days(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		key := DayKey(date)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, key)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})
	return days
}

// Streak counts consecutive calendar days ending today or yesterday.
// Days after today are ignored.
func Streak(dates []time.Time, now time.Time) int {
	today := DayKey(now)
	yesterday := today.AddDate(0, 0, -1)
	days := Days(dates)
	for len(days) > 0 && days[0].After(today) {
		days = days[1:]
	}
	if len(days) == 0 {
		return 0
	}
	if days[0].Before(yesterday) {
		return 0
	}
	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			break
		}
		streak++
	}
	return streak
}

// UserStreak is the streak over days on which at least one habit was completed.
func UserStreak(habitDates [][]time.Time, now time.Time) int {
	var all []time.Time
	for _, dates := range habitDates {
		all = append(all, dates...)
	}
	return Streak(all, now)
}

// ConsecutivePerfectDays counts the run of perfect days ending at the most
// recent snapshot. A missing calendar day ends the run.
func ConsecutivePerfectDays(snapshots []entity.DailyStat) int {
	sorted := make([]entity.DailyStat, len(snapshots))
	copy(sorted, snapshots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > PerfectRunWindow {
		sorted = sorted[:PerfectRunWindow]
	}
	run := 0
	for i, snap := range sorted {
		if !snap.IsPerfectDay {
			break
		}
		if i > 0 && !DayKey(sorted[i-1].Date).AddDate(0, 0, -1).Equal(DayKey(snap.Date)) {
			break
		}
		run++
	}
	return run
}
