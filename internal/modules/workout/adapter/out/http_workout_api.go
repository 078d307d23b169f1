package out

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fittrack/internal/modules/workout/domain"
	workoutout "fittrack/internal/modules/workout/port/out"
	"fittrack/internal/platform/apiclient"
)

// HTTPWorkoutAPI talks to the /workouts endpoints.
type HTTPWorkoutAPI struct {
	client *apiclient.Client
}

func NewHTTPWorkoutAPI(client *apiclient.Client) *HTTPWorkoutAPI {
	return &HTTPWorkoutAPI{client: client}
}

var _ workoutout.WorkoutAPI = (*HTTPWorkoutAPI)(nil)

type workoutPayload struct {
	ID              int64             `json:"id,omitempty"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	WorkoutDate     time.Time         `json:"workoutDate"`
	DurationMinutes int               `json:"durationMinutes"`
	CaloriesBurned  int               `json:"caloriesBurned,omitempty"`
	Intensity       string            `json:"intensity"`
	Notes           string            `json:"notes,omitempty"`
	Exercises       []domain.Exercise `json:"exercises"`
}

func (a *HTTPWorkoutAPI) List(ctx context.Context) ([]domain.Workout, error) {
	var payload []workoutPayload
	if err := a.client.DoJSON(ctx, http.MethodGet, "/workouts", nil, &payload); err != nil {
		return nil, err
	}
	workouts := make([]domain.Workout, 0, len(payload))
	for _, p := range payload {
		workouts = append(workouts, fromPayload(p))
	}
	return workouts, nil
}

func (a *HTTPWorkoutAPI) Get(ctx context.Context, id int64) (domain.Workout, error) {
	var payload workoutPayload
	if err := a.client.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/workouts/%d", id), nil, &payload); err != nil {
		return domain.Workout{}, err
	}
	return fromPayload(payload), nil
}

func (a *HTTPWorkoutAPI) Create(ctx context.Context, draft workoutout.Draft) error {
	return a.client.DoJSON(ctx, http.MethodPost, "/workouts", toPayload(draft), nil)
}

func (a *HTTPWorkoutAPI) Update(ctx context.Context, id int64, draft workoutout.Draft) error {
	return a.client.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/workouts/%d", id), toPayload(draft), nil)
}

func (a *HTTPWorkoutAPI) Delete(ctx context.Context, id int64) error {
	return a.client.DoJSON(ctx, http.MethodDelete, fmt.Sprintf("/workouts/%d", id), nil, nil)
}

func toPayload(draft workoutout.Draft) workoutPayload {
	exercises := draft.Exercises
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return workoutPayload{
		Name:            draft.Name,
		Description:     draft.Description,
		WorkoutDate:     draft.Date,
		DurationMinutes: draft.DurationMinutes,
		CaloriesBurned:  draft.CaloriesBurned,
		Intensity:       string(draft.Intensity),
		Notes:           draft.Notes,
		Exercises:       exercises,
	}
}

func fromPayload(p workoutPayload) domain.Workout {
	return domain.Workout{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Date:            p.WorkoutDate,
		DurationMinutes: p.DurationMinutes,
		CaloriesBurned:  p.CaloriesBurned,
		Intensity:       domain.Intensity(p.Intensity),
		Notes:           p.Notes,
		Exercises:       p.Exercises,
	}
}
