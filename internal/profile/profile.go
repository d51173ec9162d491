// Package profile reads consultant records stored as JSON documents and
// turns them into search parameters.
package profile

import (
	"github.com/benchsales/xraycli/internal/models"
)

// Consultant mirrors the consultant record shape used by the record store.
// Every field has a safe zero value; missing attributes simply drop the
// corresponding query clauses downstream.
type Consultant struct {
	Name            string   `json:"name,omitempty"`
	JobTitle        string   `json:"job_title"`
	PrimarySkills   []string `json:"primary_skills,omitempty"`
	SecondarySkills []string `json:"secondary_skills,omitempty"`
	Location        string   `json:"location,omitempty"`
	RemoteOK        bool     `json:"remote_ok,omitempty"`
	VisaStatus      string   `json:"visa_status,omitempty"`
	EmploymentTypes []string `json:"employment_types,omitempty"`
	ExperienceYears float64  `json:"experience_years,omitempty"`
	RateRange       string   `json:"rate_range,omitempty"`
}

// Params converts the record into search parameters, applying the C2C
// employment-type default.
func (c Consultant) Params() models.SearchParams {
	employmentTypes := c.EmploymentTypes
	if len(employmentTypes) == 0 {
		employmentTypes = models.DefaultEmploymentTypes()
	}
	return models.SearchParams{
		JobTitle:        c.JobTitle,
		PrimarySkills:   c.PrimarySkills,
		SecondarySkills: c.SecondarySkills,
		Location:        c.Location,
		RemoteOK:        c.RemoteOK,
		VisaStatus:      c.VisaStatus,
		EmploymentTypes: employmentTypes,
		ExperienceYears: c.ExperienceYears,
		RateRange:       c.RateRange,
	}
}
