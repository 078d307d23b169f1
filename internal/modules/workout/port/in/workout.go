package in

import (
	"context"

	"fittrack/internal/modules/workout/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) ([]dto.WorkoutOutput, error)
	Get(ctx context.Context, id int64) (dto.WorkoutDetailOutput, error)
	Create(ctx context.Context, input dto.DraftInput) error
	Update(ctx context.Context, id int64, input dto.DraftInput) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, cached bool) (dto.StatsOutput, error)
}
