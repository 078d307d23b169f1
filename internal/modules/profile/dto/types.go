package dto

type ProfileOutput struct {
	Username     string
	Email        string
	FullName     string
	WeightKg     float64
	HeightCm     float64
	FitnessGoal  string
	ProfileImage string
	BMI          float64
}

// UpdateInput uses pointers so unset fields are left alone server-side.
type UpdateInput struct {
	FullName    *string
	WeightKg    *float64 `validate:"omitempty,gt=0"`
	HeightCm    *float64 `validate:"omitempty,gt=0"`
	FitnessGoal *string
}

type UploadInput struct {
	Path string `validate:"required"`
}

type UploadOutput struct {
	ImagePath string
}
