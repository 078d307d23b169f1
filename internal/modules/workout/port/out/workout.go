package out

import (
	"context"
	"time"

	"fittrack/internal/modules/workout/domain"
)

// Draft is the client-owned payload for create and update.
type Draft struct {
	Name            string
	Description     string
	Date            time.Time
	DurationMinutes int
	CaloriesBurned  int
	Intensity       domain.Intensity
	Notes           string
	Exercises       []domain.Exercise
}

// WorkoutAPI is the external CRUD surface.
type WorkoutAPI interface {
	List(ctx context.Context) ([]domain.Workout, error)
	Get(ctx context.Context, id int64) (domain.Workout, error)
	Create(ctx context.Context, draft Draft) error
	Update(ctx context.Context, id int64, draft Draft) error
	Delete(ctx context.Context, id int64) error
}

// Cache is the local display-only projection of the last fetched list.
// The server remains the source of truth; readers use this when the API
// is unreachable or when explicitly asked for cached data.
type Cache interface {
	Replace(ctx context.Context, workouts []domain.Workout) error
	List(ctx context.Context) ([]domain.Workout, error)
}
