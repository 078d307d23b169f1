package service

import (
	"fmt"
	"net/http"
	"path/filepath"

	"fittrack/internal/modules/profile/domain"
	"fittrack/internal/modules/profile/dto"
	profileout "fittrack/internal/modules/profile/port/out"
	apperrors "fittrack/internal/platform/errors"
)

// allowedImageTypes are the avatar formats the API accepts.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

// ProfileService holds the pure profile logic: upload pre-flight checks
// and output shaping.
type ProfileService struct {
	maxUploadBytes int64
}

func NewProfileService(maxUploadBytes int64) *ProfileService {
	return &ProfileService{maxUploadBytes: maxUploadBytes}
}

// CheckImage validates candidate avatar content before any request is
// attempted. The type is sniffed from the bytes, never the extension.
func (s *ProfileService) CheckImage(path string, content []byte) (profileout.Upload, error) {
	if len(content) == 0 {
		return profileout.Upload{}, fmt.Errorf("%w: image file is empty", apperrors.ErrInvalidInput)
	}
	if int64(len(content)) > s.maxUploadBytes {
		return profileout.Upload{}, fmt.Errorf("%w: image exceeds %d bytes", apperrors.ErrInvalidInput, s.maxUploadBytes)
	}
	contentType := http.DetectContentType(content)
	if _, ok := allowedImageTypes[contentType]; !ok {
		return profileout.Upload{}, fmt.Errorf("%w: %s is not a supported image type", apperrors.ErrInvalidInput, contentType)
	}
	return profileout.Upload{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// ToOutput shapes a profile for display, deriving the BMI figure.
func (s *ProfileService) ToOutput(p domain.Profile) dto.ProfileOutput {
	return dto.ProfileOutput{
		Username:     p.Username,
		Email:        p.Email,
		FullName:     p.FullName,
		WeightKg:     p.WeightKg,
		HeightCm:     p.HeightCm,
		FitnessGoal:  p.FitnessGoal,
		ProfileImage: p.ProfileImage,
		BMI:          p.BMI(),
	}
}
