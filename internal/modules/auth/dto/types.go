package dto

type LoginInput struct {
	Username string `validate:"required,min=3"`
	Password string `validate:"required,min=6"`
}

type RegisterInput struct {
	Username    string `validate:"required"`
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=8"`
	FullName    string
	Weight      *float64 `validate:"omitempty,gte=0"`
	Height      *float64 `validate:"omitempty,gte=0"`
	FitnessGoal string
}

type UserOutput struct {
	ID       int64
	Username string
	Email    string
	Roles    []string
}

// SessionOutput is the session snapshot front ends render from.
// Restoring stays true until the first Restore completes; consumers show
// a loading state instead of deciding between views while it is set.
type SessionOutput struct {
	User          *UserOutput
	Authenticated bool
	Restoring     bool
}

type UpdateUserInput struct {
	Username *string
	Email    *string
	Roles    []string
}
