package dto

import "time"

type DraftInput struct {
	Name            string `validate:"required"`
	Description     string
	Date            time.Time `validate:"required"`
	DurationMinutes int       `validate:"gte=1"`
	CaloriesBurned  int       `validate:"gte=0"`
	Intensity       string    `validate:"required,oneof=LOW MEDIUM HIGH"`
	Notes           string
	ExercisesJSON   string
}

type WorkoutOutput struct {
	ID              int64
	Name            string
	Description     string
	Date            time.Time
	DurationMinutes int
	CaloriesBurned  int
	Intensity       string
	Notes           string
	ExerciseCount   int
}

type WorkoutDetailOutput struct {
	WorkoutOutput
	Exercises []ExerciseOutput
}

type ExerciseOutput struct {
	Name string
	Sets int
	Reps int
}

type ListInput struct {
	Query     string
	Intensity string
	Cached    bool
}

type StatsOutput struct {
	Total             int
	TotalMinutes      int
	TotalCalories     int
	AvgDuration       int
	ThisWeek          int
	WeeklyGoalMinutes int
	WeeklyProgressPct float64
	FromCache         bool
}
