package domain

import (
	"fmt"
	"strings"
	"time"
)

// Intensity is the effort level of a workout.
type Intensity string

const (
	IntensityLow    Intensity = "LOW"
	IntensityMedium Intensity = "MEDIUM"
	IntensityHigh   Intensity = "HIGH"

	// IntensityAll is a filter selector, never a stored value.
	IntensityAll Intensity = "ALL"
)

func (i Intensity) Validate() error {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return nil
	default:
		return fmt.Errorf("unsupported intensity %q", string(i))
	}
}

// ParseIntensity normalizes user input into an Intensity or the ALL
// selector.
func ParseIntensity(s string) (Intensity, error) {
	level := Intensity(strings.ToUpper(strings.TrimSpace(s)))
	if level == IntensityAll || level == "" {
		return IntensityAll, nil
	}
	if err := level.Validate(); err != nil {
		return "", err
	}
	return level, nil
}

// Exercise is one movement inside a workout, as returned by the API.
type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
}

// Workout is one logged exercise session. Duration and calories may be
// absent in API payloads and count as zero everywhere.
type Workout struct {
	ID              int64
	Name            string
	Description     string
	Date            time.Time
	DurationMinutes int
	CaloriesBurned  int
	Intensity       Intensity
	Notes           string
	Exercises       []Exercise
}

// Filter returns the workouts whose name contains query
// (case-insensitive) and whose intensity matches level, where
// IntensityAll matches everything.
func Filter(workouts []Workout, query string, level Intensity) []Workout {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		if query != "" && !strings.Contains(strings.ToLower(w.Name), query) {
			continue
		}
		if level != IntensityAll && w.Intensity != level {
			continue
		}
		out = append(out, w)
	}
	return out
}
