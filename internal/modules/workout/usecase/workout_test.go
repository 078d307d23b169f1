package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"fittrack/internal/modules/workout/domain"
	"fittrack/internal/modules/workout/dto"
	workoutout "fittrack/internal/modules/workout/port/out"
	"fittrack/internal/modules/workout/service"
	"fittrack/internal/modules/workout/usecase"
	apperrors "fittrack/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeAPI struct {
	workouts []domain.Workout
	listErr  error
	created  []workoutout.Draft
	updated  map[int64]workoutout.Draft
	deleted  []int64
}

func (f *fakeAPI) List(context.Context) ([]domain.Workout, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.workouts, nil
}

func (f *fakeAPI) Get(_ context.Context, id int64) (domain.Workout, error) {
	for _, w := range f.workouts {
		if w.ID == id {
			return w, nil
		}
	}
	return domain.Workout{}, apperrors.ErrNotFound
}

func (f *fakeAPI) Create(_ context.Context, draft workoutout.Draft) error {
	f.created = append(f.created, draft)
	return nil
}

func (f *fakeAPI) Update(_ context.Context, id int64, draft workoutout.Draft) error {
	if f.updated == nil {
		f.updated = map[int64]workoutout.Draft{}
	}
	f.updated[id] = draft
	return nil
}

func (f *fakeAPI) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type memCache struct {
	workouts []domain.Workout
	replaced int
}

func (m *memCache) Replace(_ context.Context, workouts []domain.Workout) error {
	m.workouts = append([]domain.Workout(nil), workouts...)
	m.replaced++
	return nil
}

func (m *memCache) List(context.Context) ([]domain.Workout, error) {
	return m.workouts, nil
}

var now = time.Date(2026, 4, 20, 10, 0, 0, 0, time.UTC)

func fixtures() []domain.Workout {
	return []domain.Workout{
		{ID: 1, Name: "Morning Run", Intensity: domain.IntensityLow, DurationMinutes: 30, CaloriesBurned: 200, Date: now.Add(-10 * 24 * time.Hour)},
		{ID: 2, Name: "Evening Lift", Intensity: domain.IntensityHigh, DurationMinutes: 45, Date: now.Add(-2 * 24 * time.Hour)},
		{ID: 3, Name: "Morning Lift", Intensity: domain.IntensityHigh, CaloriesBurned: 150, Date: now.Add(-24 * time.Hour)},
	}
}

func TestListFiltersByQueryAndIntensityAndRefreshesCache(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{workouts: fixtures()}
	cache := &memCache{}
	uc := usecase.NewInteractor(service.NewWorkoutService(fixedClock{now}, 150), api, cache, zerolog.Nop())

	out, err := uc.List(context.Background(), dto.ListInput{Query: "morning", Intensity: "HIGH"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Morning Lift" {
		t.Fatalf("expected exactly Morning Lift, got %+v", out)
	}
	if cache.replaced != 1 || len(cache.workouts) != 3 {
		t.Fatalf("cache must hold the unfiltered list, got %d replacements %d rows", cache.replaced, len(cache.workouts))
	}
}

func TestListRejectsUnknownIntensity(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewWorkoutService(fixedClock{now}, 150), &fakeAPI{}, &memCache{}, zerolog.Nop())
	if _, err := uc.List(context.Background(), dto.ListInput{Intensity: "EXTREME"}); err == nil {
		t.Fatalf("unknown intensity must fail")
	}
}

func TestStatsComputesAggregateAndFallsBackToCache(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{workouts: fixtures()}
	cache := &memCache{}
	uc := usecase.NewInteractor(service.NewWorkoutService(fixedClock{now}, 150), api, cache, zerolog.Nop())

	stats, err := uc.Stats(context.Background(), false)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 || stats.TotalMinutes != 75 || stats.TotalCalories != 350 || stats.AvgDuration != 25 || stats.ThisWeek != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.FromCache {
		t.Fatalf("live stats must not be marked cached")
	}

	api.listErr = errors.New("network down")
	stats, err = uc.Stats(context.Background(), false)
	if err != nil {
		t.Fatalf("stats with fallback: %v", err)
	}
	if !stats.FromCache || stats.Total != 3 {
		t.Fatalf("expected cached fallback, got %+v", stats)
	}
}

func TestCreateValidatesBeforeAPI(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewWorkoutService(fixedClock{now}, 150), api, &memCache{}, zerolog.Nop())

	err := uc.Create(context.Background(), dto.DraftInput{Name: "", Date: now, DurationMinutes: 30, Intensity: "LOW"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("missing name must fail pre-flight, got %v", err)
	}
	err = uc.Create(context.Background(), dto.DraftInput{Name: "Run", Date: now, DurationMinutes: 0, Intensity: "LOW"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("zero duration must fail pre-flight, got %v", err)
	}
	if len(api.created) != 0 {
		t.Fatalf("invalid drafts must never reach the API")
	}

	err = uc.Create(context.Background(), dto.DraftInput{
		Name: "Run", Date: now, DurationMinutes: 30, CaloriesBurned: 120,
		Intensity: "low", ExercisesJSON: `[{"name":"squat","sets":3,"reps":10}]`,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(api.created) != 1 || api.created[0].Intensity != domain.IntensityLow || len(api.created[0].Exercises) != 1 {
		t.Fatalf("unexpected draft: %+v", api.created)
	}
}

func TestUpdateAndDeletePassThrough(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{workouts: fixtures()}
	uc := usecase.NewInteractor(service.NewWorkoutService(fixedClock{now}, 150), api, &memCache{}, zerolog.Nop())

	err := uc.Update(context.Background(), 2, dto.DraftInput{Name: "Evening Lift", Date: now, DurationMinutes: 50, Intensity: "HIGH"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if api.updated[2].DurationMinutes != 50 {
		t.Fatalf("update draft not forwarded: %+v", api.updated)
	}

	if err := uc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != 3 {
		t.Fatalf("delete not forwarded: %v", api.deleted)
	}
}

func TestGetReturnsDetailWithExercises(t *testing.T) {
	t.Parallel()
	workouts := fixtures()
	workouts[0].Exercises = []domain.Exercise{{Name: "stride", Sets: 1, Reps: 1}}
	api := &fakeAPI{workouts: workouts}
	uc := usecase.NewInteractor(service.NewWorkoutService(fixedClock{now}, 150), api, &memCache{}, zerolog.Nop())

	detail, err := uc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if detail.Name != "Morning Run" || len(detail.Exercises) != 1 || detail.ExerciseCount != 1 {
		t.Fatalf("unexpected detail: %+v", detail)
	}

	if _, err := uc.Get(context.Background(), 99); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("missing workout must be not found, got %v", err)
	}
}
