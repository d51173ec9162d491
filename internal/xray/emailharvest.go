package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

// EmailHarvest surfaces recruiter/vendor email addresses for direct
// submission outreach.
type EmailHarvest struct{}

func (EmailHarvest) Name() string {
	return BuilderEmailHarvest
}

func (EmailHarvest) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle

	q := group(quotedOr(title, "bench sales"))
	q = withGroup(q, quotedOr("send resume to", "email your resume", "submit resume"))
	q = withTerm(q, quote("@"))
	q = withGroup(q, quotedOr("gmail.com", "yahoo.com", ".com"))

	return []models.SearchQuery{{
		Query:       q,
		Platform:    models.PlatformGoogle,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("Find recruiter emails for %s submissions", title),
		Category:    models.CategoryContactFind,
		Priority:    2,
	}}
}
