package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"fittrack/internal/modules/workout/domain"
	"fittrack/internal/modules/workout/dto"
	workoutin "fittrack/internal/modules/workout/port/in"
	workoutout "fittrack/internal/modules/workout/port/out"
	"fittrack/internal/modules/workout/service"
)

type Interactor struct {
	svc   *service.WorkoutService
	api   workoutout.WorkoutAPI
	cache workoutout.Cache
	log   zerolog.Logger
}

func NewInteractor(svc *service.WorkoutService, api workoutout.WorkoutAPI, cache workoutout.Cache, log zerolog.Logger) workoutin.Usecase {
	return &Interactor{svc: svc, api: api, cache: cache, log: log}
}

// List fetches workouts and applies the query/intensity filter locally,
// the same filtering the dashboard view layers on its list. A successful
// fetch refreshes the cache; Cached skips the API entirely.
func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.WorkoutOutput, error) {
	level, err := domain.ParseIntensity(input.Intensity)
	if err != nil {
		return nil, err
	}

	var workouts []domain.Workout
	if input.Cached {
		workouts, err = i.cache.List(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		workouts, err = i.api.List(ctx)
		if err != nil {
			return nil, err
		}
		i.refreshCache(ctx, workouts)
	}

	filtered := domain.Filter(workouts, input.Query, level)
	out := make([]dto.WorkoutOutput, 0, len(filtered))
	for _, w := range filtered {
		out = append(out, toOutput(w))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id int64) (dto.WorkoutDetailOutput, error) {
	w, err := i.api.Get(ctx, id)
	if err != nil {
		return dto.WorkoutDetailOutput{}, err
	}
	detail := dto.WorkoutDetailOutput{WorkoutOutput: toOutput(w)}
	for _, e := range w.Exercises {
		detail.Exercises = append(detail.Exercises, dto.ExerciseOutput{Name: e.Name, Sets: e.Sets, Reps: e.Reps})
	}
	return detail, nil
}

func (i *Interactor) Create(ctx context.Context, input dto.DraftInput) error {
	draft, err := i.svc.BuildDraft(input)
	if err != nil {
		return err
	}
	return i.api.Create(ctx, draft)
}

func (i *Interactor) Update(ctx context.Context, id int64, input dto.DraftInput) error {
	draft, err := i.svc.BuildDraft(input)
	if err != nil {
		return err
	}
	return i.api.Update(ctx, id, draft)
}

func (i *Interactor) Delete(ctx context.Context, id int64) error {
	return i.api.Delete(ctx, id)
}

// Stats computes the aggregate over the full list (filters never narrow
// it). With cached=true, or when the API is unreachable, the last cached
// list is used and the output says so.
func (i *Interactor) Stats(ctx context.Context, cached bool) (dto.StatsOutput, error) {
	if cached {
		workouts, err := i.cache.List(ctx)
		if err != nil {
			return dto.StatsOutput{}, err
		}
		return i.svc.Stats(workouts, true), nil
	}

	workouts, err := i.api.List(ctx)
	if err != nil {
		if i.cache == nil {
			return dto.StatsOutput{}, err
		}
		i.log.Warn().Err(err).Msg("stats falling back to cached workouts")
		cachedWorkouts, cacheErr := i.cache.List(ctx)
		if cacheErr != nil {
			return dto.StatsOutput{}, err
		}
		return i.svc.Stats(cachedWorkouts, true), nil
	}
	i.refreshCache(ctx, workouts)
	return i.svc.Stats(workouts, false), nil
}

// refreshCache is best-effort: a cache failure must never fail a fetch.
func (i *Interactor) refreshCache(ctx context.Context, workouts []domain.Workout) {
	if i.cache == nil {
		return
	}
	if err := i.cache.Replace(ctx, workouts); err != nil {
		i.log.Warn().Err(err).Msg("workout cache refresh failed")
	}
}

func toOutput(w domain.Workout) dto.WorkoutOutput {
	return dto.WorkoutOutput{
		ID:              w.ID,
		Name:            w.Name,
		Description:     w.Description,
		Date:            w.Date,
		DurationMinutes: w.DurationMinutes,
		CaloriesBurned:  w.CaloriesBurned,
		Intensity:       string(w.Intensity),
		Notes:           w.Notes,
		ExerciseCount:   len(w.Exercises),
	}
}
