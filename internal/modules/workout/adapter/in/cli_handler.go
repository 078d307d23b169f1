package in

import (
	"context"

	"fittrack/internal/modules/workout/dto"
	workoutin "fittrack/internal/modules/workout/port/in"
)

type CLIHandler struct {
	usecase workoutin.Usecase
}

func NewCLIHandler(usecase workoutin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, input dto.ListInput) ([]dto.WorkoutOutput, error) {
	return h.usecase.List(ctx, input)
}

func (h CLIHandler) Get(ctx context.Context, id int64) (dto.WorkoutDetailOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Create(ctx context.Context, input dto.DraftInput) error {
	return h.usecase.Create(ctx, input)
}

func (h CLIHandler) Update(ctx context.Context, id int64, input dto.DraftInput) error {
	return h.usecase.Update(ctx, id, input)
}

func (h CLIHandler) Delete(ctx context.Context, id int64) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Stats(ctx context.Context, cached bool) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx, cached)
}
