package in

import (
	"context"

	"fittrack/internal/modules/auth/dto"
	authin "fittrack/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Restore(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Restore(ctx)
}

func (h CLIHandler) Login(ctx context.Context, username, password string) (dto.SessionOutput, error) {
	return h.usecase.Login(ctx, dto.LoginInput{Username: username, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, input dto.RegisterInput) error {
	return h.usecase.Register(ctx, input)
}

func (h CLIHandler) UpdateUser(ctx context.Context, input dto.UpdateUserInput) (dto.SessionOutput, error) {
	return h.usecase.UpdateUser(ctx, input)
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Current(ctx context.Context) dto.SessionOutput {
	return h.usecase.Current(ctx)
}
