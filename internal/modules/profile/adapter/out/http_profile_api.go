package out

import (
	"bytes"
	"context"
	"net/http"

	"fittrack/internal/modules/profile/domain"
	profileout "fittrack/internal/modules/profile/port/out"
	"fittrack/internal/platform/apiclient"
)

// HTTPProfileAPI talks to the /users/me endpoints.
type HTTPProfileAPI struct {
	client *apiclient.Client
}

func NewHTTPProfileAPI(client *apiclient.Client) *HTTPProfileAPI {
	return &HTTPProfileAPI{client: client}
}

var _ profileout.ProfileAPI = (*HTTPProfileAPI)(nil)

type profilePayload struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	FullName     string  `json:"fullName,omitempty"`
	Weight       float64 `json:"weight,omitempty"`
	Height       float64 `json:"height,omitempty"`
	FitnessGoal  string  `json:"fitnessGoal,omitempty"`
	ProfileImage string  `json:"profileImage,omitempty"`
}

type updatePayload struct {
	FullName    *string  `json:"fullName,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	FitnessGoal *string  `json:"fitnessGoal,omitempty"`
}

type uploadResponse struct {
	ImagePath string `json:"imagePath"`
}

func (a *HTTPProfileAPI) Get(ctx context.Context) (domain.Profile, error) {
	var payload profilePayload
	if err := a.client.DoJSON(ctx, http.MethodGet, "/users/me", nil, &payload); err != nil {
		return domain.Profile{}, err
	}
	return fromPayload(payload), nil
}

func (a *HTTPProfileAPI) Update(ctx context.Context, patch domain.Patch) (domain.Profile, error) {
	body := updatePayload{
		FullName:    patch.FullName,
		Weight:      patch.WeightKg,
		Height:      patch.HeightCm,
		FitnessGoal: patch.FitnessGoal,
	}
	var payload profilePayload
	if err := a.client.DoJSON(ctx, http.MethodPut, "/users/me", body, &payload); err != nil {
		return domain.Profile{}, err
	}
	return fromPayload(payload), nil
}

func (a *HTTPProfileAPI) UploadImage(ctx context.Context, upload profileout.Upload) (string, error) {
	var resp uploadResponse
	err := a.client.DoMultipart(ctx, "/users/me/upload-profile-image", "file",
		upload.Filename, upload.ContentType, bytes.NewReader(upload.Content), &resp)
	if err != nil {
		return "", err
	}
	return resp.ImagePath, nil
}

func fromPayload(p profilePayload) domain.Profile {
	return domain.Profile{
		Username:     p.Username,
		Email:        p.Email,
		FullName:     p.FullName,
		WeightKg:     p.Weight,
		HeightCm:     p.Height,
		FitnessGoal:  p.FitnessGoal,
		ProfileImage: p.ProfileImage,
	}
}
