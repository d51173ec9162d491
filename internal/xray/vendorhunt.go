package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

// VendorHunt finds vendor companies and recruiter contacts that post
// matching requirements: one query for submission-request postings with
// email addresses, one for staffing firms working these skills.
type VendorHunt struct{}

func (VendorHunt) Name() string {
	return BuilderVendorHunt
}

func (VendorHunt) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle
	skills := skillClause(p.PrimarySkills, 3)

	q := group(titleOrSkills(title, p.PrimarySkills, 3))
	q = withGroup(q, quotedOr("send resume", "email resume", "send profiles", "share profiles"))
	q = withGroup(q, quotedOr("c2c", "corp to corp", "contract"))
	q = withTerm(q, quote("@"))
	q = withGroup(q, quotedOr(".com", ".net", ".io"))
	q = withQuoted(q, p.Location)
	emails := models.SearchQuery{
		Query:       q,
		Platform:    models.PlatformGoogle,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("Vendor hunt: Find recruiters with %s needs", title),
		Category:    models.CategoryVendorHunt,
		Priority:    1,
	}

	q2 := quote("staffing")
	q2 = withGroup(q2, quotedOr("consulting"))
	q2 = withGroup(q2, skills)
	q2 = withGroup(q2, quotedOr("c2c", "corp to corp", "contract staffing"))
	q2 = withQuoted(q2, "united states")
	firms := models.SearchQuery{
		Query:       q2,
		Platform:    models.PlatformGoogle,
		SearchURL:   SearchURL(q2),
		Description: fmt.Sprintf("Find staffing companies specializing in %s", title),
		Category:    models.CategoryVendorHunt,
		Priority:    2,
	}

	return []models.SearchQuery{emails, firms}
}
