package out

import (
	"context"

	"fittrack/internal/modules/auth/domain"
)

// CredentialStore is the durable two-entry store: the raw token and the
// JSON-serialized user record. Save writes both together or neither;
// Clear removes both.
type CredentialStore interface {
	Save(ctx context.Context, token string, user domain.User) error
	Load(ctx context.Context) (token string, user domain.User, err error)
	Clear(ctx context.Context) error
}

// LoginResult is what the client consumes from a successful login.
type LoginResult struct {
	Token string
	User  domain.User
}

// RegisterRequest carries the registration payload. Optional fields stay
// nil so the wire payload omits them.
type RegisterRequest struct {
	Username    string
	Email       string
	Password    string
	FullName    string
	Weight      *float64
	Height      *float64
	FitnessGoal string
}

// AuthAPI is the external authentication endpoint pair.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) error
}
