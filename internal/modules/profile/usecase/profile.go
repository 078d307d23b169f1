package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"fittrack/internal/modules/profile/domain"
	"fittrack/internal/modules/profile/dto"
	profilein "fittrack/internal/modules/profile/port/in"
	profileout "fittrack/internal/modules/profile/port/out"
	"fittrack/internal/modules/profile/service"
	"fittrack/internal/platform/validate"
)

// Interactor implements the profile operations over the /users/me API.
type Interactor struct {
	svc *service.ProfileService
	api profileout.ProfileAPI
	log zerolog.Logger
}

func NewInteractor(svc *service.ProfileService, api profileout.ProfileAPI, log zerolog.Logger) profilein.Usecase {
	return &Interactor{svc: svc, api: api, log: log}
}

func (i *Interactor) Get(ctx context.Context) (dto.ProfileOutput, error) {
	profile, err := i.api.Get(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return i.svc.ToOutput(profile), nil
}

// Update sends only the fields the caller set. The server answers with
// the full profile, which becomes the new display state.
func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.ProfileOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.ProfileOutput{}, err
	}
	profile, err := i.api.Update(ctx, domain.Patch{
		FullName:    input.FullName,
		WeightKg:    input.WeightKg,
		HeightCm:    input.HeightCm,
		FitnessGoal: input.FitnessGoal,
	})
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	i.log.Info().Msg("profile updated")
	return i.svc.ToOutput(profile), nil
}

// UploadImage reads the local file, runs the pre-flight checks and
// ships the avatar. Rejections happen before any network traffic.
func (i *Interactor) UploadImage(ctx context.Context, input dto.UploadInput) (dto.UploadOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.UploadOutput{}, err
	}
	content, err := os.ReadFile(input.Path)
	if err != nil {
		return dto.UploadOutput{}, fmt.Errorf("read image: %w", err)
	}
	upload, err := i.svc.CheckImage(input.Path, content)
	if err != nil {
		return dto.UploadOutput{}, err
	}
	imagePath, err := i.api.UploadImage(ctx, upload)
	if err != nil {
		return dto.UploadOutput{}, err
	}
	i.log.Info().Str("image", imagePath).Msg("profile image uploaded")
	return dto.UploadOutput{ImagePath: imagePath}, nil
}
