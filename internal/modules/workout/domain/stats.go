package domain

import (
	"math"
	"time"
)

// Stats is a display-only aggregate over a workout list. It is computed
// fresh on demand and never persisted.
type Stats struct {
	Total             int
	TotalMinutes      int
	TotalCalories     int
	AvgDuration       int
	ThisWeek          int
	WeeklyProgressPct float64
}

// ComputeStats derives Stats from workouts at the given instant. The
// trailing-week window includes its lower bound (now-7d ≤ t). The
// progress percentage is clamped at 100 for display; a non-positive goal
// yields 0 rather than dividing by it.
func ComputeStats(workouts []Workout, now time.Time, weeklyGoalMinutes int) Stats {
	stats := Stats{Total: len(workouts)}
	weekStart := now.Add(-7 * 24 * time.Hour)

	for _, w := range workouts {
		stats.TotalMinutes += w.DurationMinutes
		stats.TotalCalories += w.CaloriesBurned
		if !w.Date.Before(weekStart) {
			stats.ThisWeek++
		}
	}

	if stats.Total > 0 {
		stats.AvgDuration = int(math.Round(float64(stats.TotalMinutes) / float64(stats.Total)))
	}
	if weeklyGoalMinutes > 0 {
		pct := float64(stats.TotalMinutes) / float64(weeklyGoalMinutes) * 100
		stats.WeeklyProgressPct = math.Min(100, pct)
	}
	return stats
}
