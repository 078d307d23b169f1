package in

import (
	"context"

	"fittrack/internal/modules/profile/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.ProfileOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.ProfileOutput, error)
	UploadImage(ctx context.Context, input dto.UploadInput) (dto.UploadOutput, error)
}
