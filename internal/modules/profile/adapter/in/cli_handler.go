package in

import (
	"context"

	"fittrack/internal/modules/profile/dto"
	profilein "fittrack/internal/modules/profile/port/in"
)

// CLIHandler adapts the profile usecase for command and TUI callers.
type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) *CLIHandler {
	return &CLIHandler{usecase: usecase}
}

func (h *CLIHandler) Get(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.Get(ctx)
}

func (h *CLIHandler) Update(ctx context.Context, input dto.UpdateInput) (dto.ProfileOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h *CLIHandler) UploadImage(ctx context.Context, path string) (dto.UploadOutput, error) {
	return h.usecase.UploadImage(ctx, dto.UploadInput{Path: path})
}
