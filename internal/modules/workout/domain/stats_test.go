package domain_test

import (
	"testing"
	"time"

	"fittrack/internal/modules/workout/domain"
)

var now = time.Date(2026, 4, 20, 10, 0, 0, 0, time.UTC)

func TestComputeStatsOnEmptyInput(t *testing.T) {
	t.Parallel()
	stats := domain.ComputeStats(nil, now, 150)
	want := domain.Stats{}
	if stats != want {
		t.Fatalf("empty input must yield all zeroes, got %+v", stats)
	}
}

func TestComputeStatsWorkedExample(t *testing.T) {
	t.Parallel()
	workouts := []domain.Workout{
		{Name: "Long Ride", DurationMinutes: 30, CaloriesBurned: 200, Date: now.Add(-10 * 24 * time.Hour)},
		{Name: "Run", DurationMinutes: 45, CaloriesBurned: 0, Date: now.Add(-2 * 24 * time.Hour)},
		{Name: "Stretch", DurationMinutes: 0, CaloriesBurned: 150, Date: now.Add(-1 * 24 * time.Hour)},
	}
	stats := domain.ComputeStats(workouts, now, 150)
	if stats.Total != 3 || stats.TotalMinutes != 75 || stats.TotalCalories != 350 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.AvgDuration != 25 {
		t.Fatalf("expected avg 25, got %d", stats.AvgDuration)
	}
	if stats.ThisWeek != 2 {
		t.Fatalf("expected 2 workouts this week, got %d", stats.ThisWeek)
	}
	if stats.WeeklyProgressPct != 50 {
		t.Fatalf("expected 50%% progress, got %.1f", stats.WeeklyProgressPct)
	}
}

func TestComputeStatsWeekWindowIncludesLowerBound(t *testing.T) {
	t.Parallel()
	workouts := []domain.Workout{
		{Date: now.Add(-7 * 24 * time.Hour)},           // exactly on the bound
		{Date: now.Add(-7*24*time.Hour - time.Second)}, // just outside
		{Date: now},                                    // right now
	}
	stats := domain.ComputeStats(workouts, now, 150)
	if stats.ThisWeek != 2 {
		t.Fatalf("inclusive lower bound expected 2, got %d", stats.ThisWeek)
	}
}

func TestComputeStatsClampsWeeklyProgress(t *testing.T) {
	t.Parallel()
	workouts := []domain.Workout{{DurationMinutes: 300, Date: now}}
	stats := domain.ComputeStats(workouts, now, 150)
	if stats.WeeklyProgressPct != 100 {
		t.Fatalf("expected clamp at 100, got %.1f", stats.WeeklyProgressPct)
	}

	if got := domain.ComputeStats(workouts, now, 0).WeeklyProgressPct; got != 0 {
		t.Fatalf("non-positive goal must yield 0, got %.1f", got)
	}
}

func TestFilterCombinesQueryAndIntensity(t *testing.T) {
	t.Parallel()
	workouts := []domain.Workout{
		{Name: "Morning Run", Intensity: domain.IntensityLow},
		{Name: "Evening Lift", Intensity: domain.IntensityHigh},
		{Name: "Morning Lift", Intensity: domain.IntensityHigh},
	}

	got := domain.Filter(workouts, "morning", domain.IntensityHigh)
	if len(got) != 1 || got[0].Name != "Morning Lift" {
		t.Fatalf("expected exactly Morning Lift, got %+v", got)
	}

	if got := domain.Filter(workouts, "", domain.IntensityAll); len(got) != 3 {
		t.Fatalf("ALL with empty query must keep everything, got %d", len(got))
	}
	if got := domain.Filter(workouts, "LIFT", domain.IntensityAll); len(got) != 2 {
		t.Fatalf("query must be case-insensitive, got %d", len(got))
	}
}

func TestParseIntensity(t *testing.T) {
	t.Parallel()
	cases := map[string]domain.Intensity{
		"":      domain.IntensityAll,
		"all":   domain.IntensityAll,
		"low":   domain.IntensityLow,
		" HIGH ": domain.IntensityHigh,
	}
	for input, want := range cases {
		got, err := domain.ParseIntensity(input)
		if err != nil || got != want {
			t.Fatalf("parse %q: got %q err %v", input, got, err)
		}
	}
	if _, err := domain.ParseIntensity("extreme"); err == nil {
		t.Fatalf("unknown level must fail")
	}
}
