package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"fittrack/internal/modules/workout/domain"
	"fittrack/internal/modules/workout/dto"
	workoutout "fittrack/internal/modules/workout/port/out"
	"fittrack/internal/platform/clock"
	"fittrack/internal/platform/validate"
)

// WorkoutService holds the pure workout logic: draft construction with
// pre-flight validation, and statistics derivation.
type WorkoutService struct {
	clock             clock.Clock
	weeklyGoalMinutes int
}

func NewWorkoutService(clk clock.Clock, weeklyGoalMinutes int) *WorkoutService {
	return &WorkoutService{clock: clk, weeklyGoalMinutes: weeklyGoalMinutes}
}

// BuildDraft validates the input and shapes it for the wire. Failures
// here mean no request is attempted.
func (s *WorkoutService) BuildDraft(input dto.DraftInput) (workoutout.Draft, error) {
	input.Intensity = strings.ToUpper(strings.TrimSpace(input.Intensity))
	if err := validate.Struct(input); err != nil {
		return workoutout.Draft{}, err
	}
	intensity := domain.Intensity(input.Intensity)

	exercises := []domain.Exercise{}
	if strings.TrimSpace(input.ExercisesJSON) != "" {
		if err := json.Unmarshal([]byte(input.ExercisesJSON), &exercises); err != nil {
			return workoutout.Draft{}, fmt.Errorf("exercises must be a JSON array: %w", err)
		}
	}

	return workoutout.Draft{
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		Date:            input.Date,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
		Intensity:       intensity,
		Notes:           input.Notes,
		Exercises:       exercises,
	}, nil
}

// Stats derives the display aggregate at the current instant.
func (s *WorkoutService) Stats(workouts []domain.Workout, fromCache bool) dto.StatsOutput {
	stats := domain.ComputeStats(workouts, s.clock.Now(), s.weeklyGoalMinutes)
	return dto.StatsOutput{
		Total:             stats.Total,
		TotalMinutes:      stats.TotalMinutes,
		TotalCalories:     stats.TotalCalories,
		AvgDuration:       stats.AvgDuration,
		ThisWeek:          stats.ThisWeek,
		WeeklyGoalMinutes: s.weeklyGoalMinutes,
		WeeklyProgressPct: stats.WeeklyProgressPct,
		FromCache:         fromCache,
	}
}
