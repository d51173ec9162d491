package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

type ZipRecruiter struct{}

func (ZipRecruiter) Name() string {
	return BuilderZipRecruiter
}

func (ZipRecruiter) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle

	q := "site:ziprecruiter.com/jobs"
	q = withQuoted(q, title)
	q = withGroup(q, skillClause(p.PrimarySkills, 3))
	q += " " + quote("contract")
	q = withQuoted(q, p.Location)

	return []models.SearchQuery{{
		Query:       q,
		Platform:    models.PlatformZipRecruiter,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("ZipRecruiter X-ray: %s contract roles", title),
		Category:    models.CategoryJobSearch,
		Priority:    2,
	}}
}
