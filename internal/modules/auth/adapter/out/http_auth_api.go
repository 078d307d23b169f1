package out

import (
	"context"
	"net/http"

	"fittrack/internal/modules/auth/domain"
	authout "fittrack/internal/modules/auth/port/out"
	"fittrack/internal/platform/apiclient"
)

// HTTPAuthAPI talks to the /auth endpoints.
type HTTPAuthAPI struct {
	client *apiclient.Client
}

func NewHTTPAuthAPI(client *apiclient.Client) *HTTPAuthAPI {
	return &HTTPAuthAPI{client: client}
}

var _ authout.AuthAPI = (*HTTPAuthAPI)(nil)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	ID       int64    `json:"id"`
	Roles    []string `json:"roles"`
}

func (a *HTTPAuthAPI) Login(ctx context.Context, username, password string) (authout.LoginResult, error) {
	var resp loginResponse
	err := a.client.DoJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return authout.LoginResult{}, err
	}
	return authout.LoginResult{
		Token: resp.Token,
		User: domain.User{
			ID:       resp.ID,
			Username: resp.Username,
			Email:    resp.Email,
			Roles:    resp.Roles,
		},
	}, nil
}

type registerRequest struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	FullName    string   `json:"fullName,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	FitnessGoal string   `json:"fitnessGoal,omitempty"`
}

func (a *HTTPAuthAPI) Register(ctx context.Context, req authout.RegisterRequest) error {
	return a.client.DoJSON(ctx, http.MethodPost, "/auth/register", registerRequest{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		Weight:      req.Weight,
		Height:      req.Height,
		FitnessGoal: req.FitnessGoal,
	}, nil)
}
