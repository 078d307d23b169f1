package domain

// Profile is the account-level view of the current user, fields the
// workout sessions themselves never carry.
type Profile struct {
	Username     string
	Email        string
	FullName     string
	WeightKg     float64
	HeightCm     float64
	FitnessGoal  string
	ProfileImage string
}

// BMI derives body mass index from weight and height. Zero when either
// measurement is unset, so callers can hide the figure.
func (p Profile) BMI() float64 {
	if p.WeightKg <= 0 || p.HeightCm <= 0 {
		return 0
	}
	meters := p.HeightCm / 100
	return p.WeightKg / (meters * meters)
}

// Patch carries the fields an update may change. Nil means keep.
type Patch struct {
	FullName    *string
	WeightKg    *float64
	HeightCm    *float64
	FitnessGoal *string
}
