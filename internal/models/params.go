package models

// SearchParams captures the consultant profile attributes used to build
// search queries. Values are read once constructed; builders never mutate
// them, so a single instance is safe to share across goroutines.
type SearchParams struct {
	JobTitle        string
	PrimarySkills   []string
	SecondarySkills []string
	Location        string
	RemoteOK        bool
	VisaStatus      string
	EmploymentTypes []string
	ExperienceYears float64
	RateRange       string
}

// DefaultEmploymentTypes is applied when a profile or flag set leaves
// employment types empty.
func DefaultEmploymentTypes() []string {
	return []string{"C2C"}
}
