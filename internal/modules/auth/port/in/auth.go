package in

import (
	"context"

	"fittrack/internal/modules/auth/dto"
)

// Usecase is the session manager surface the front ends consume.
type Usecase interface {
	// Restore rebuilds the session from the durable store. It always
	// completes the session's initial load, whatever the outcome.
	Restore(ctx context.Context) (dto.SessionOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) error
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, input dto.UpdateUserInput) (dto.SessionOutput, error)
	Current(ctx context.Context) dto.SessionOutput
}
