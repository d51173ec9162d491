package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

// LinkedIn emits four X-ray queries: job postings, recruiter profiles,
// vendor company pages, and urgent-requirement posts.
type LinkedIn struct{}

func (LinkedIn) Name() string {
	return BuilderLinkedIn
}

func (LinkedIn) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle
	skills := skillClause(p.PrimarySkills, 4)

	q := "site:linkedin.com/jobs"
	q = withQuoted(q, title)
	q = withGroup(q, skills)
	q = withQuoted(q, p.Location)
	q = withGroup(q, quotedOr("c2c", "corp to corp", "corp-to-corp", "contract"))
	jobs := models.SearchQuery{
		Query:       q,
		Platform:    models.PlatformLinkedIn,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("LinkedIn Jobs X-ray: %s contract roles", title),
		Category:    models.CategoryJobSearch,
		Priority:    1,
	}

	q2 := "site:linkedin.com/in"
	q2 = withGroup(q2, quotedOr("bench sales", "us staffing", "it recruiter"))
	q2 = withGroup(q2, skills)
	q2 = withQuoted(q2, p.Location)
	recruiters := models.SearchQuery{
		Query:       q2,
		Platform:    models.PlatformLinkedIn,
		SearchURL:   SearchURL(q2),
		Description: fmt.Sprintf("LinkedIn People X-ray: Recruiters posting %s roles", title),
		Category:    models.CategoryContactFind,
		Priority:    2,
	}

	q3 := "site:linkedin.com/company"
	q3 = withGroup(q3, quotedOr(vendorIndicators[:3]...))
	q3 = withGroup(q3, titleOrSkills(title, p.PrimarySkills, 4))
	companies := models.SearchQuery{
		Query:       q3,
		Platform:    models.PlatformLinkedIn,
		SearchURL:   SearchURL(q3),
		Description: fmt.Sprintf("LinkedIn Companies X-ray: Vendors hiring %s", title),
		Category:    models.CategoryVendorHunt,
		Priority:    3,
	}

	q4 := "site:linkedin.com/posts"
	q4 = withGroup(q4, quotedOr("urgent requirement", "hot requirement", "immediate need", "looking for"))
	q4 = withQuoted(q4, title)
	q4 = withGroup(q4, quotedOr("c2c", "corp to corp", "corp-to-corp", "contract"))
	q4 = withQuoted(q4, p.Location)
	posts := models.SearchQuery{
		Query:       q4,
		Platform:    models.PlatformLinkedIn,
		SearchURL:   SearchURL(q4),
		Description: fmt.Sprintf("LinkedIn Posts X-ray: Urgent %s requirements", title),
		Category:    models.CategoryJobSearch,
		Priority:    1,
	}

	return []models.SearchQuery{jobs, recruiters, companies, posts}
}
