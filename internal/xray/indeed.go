package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

type Indeed struct{}

func (Indeed) Name() string {
	return BuilderIndeed
}

func (Indeed) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle

	q := "site:indeed.com/viewjob"
	q = withQuoted(q, title)
	q = withGroup(q, skillClause(p.PrimarySkills, 3))
	q = withGroup(q, quotedOr("c2c", "corp to corp", "contract"))
	q = withQuoted(q, p.Location)

	return []models.SearchQuery{{
		Query:       q,
		Platform:    models.PlatformIndeed,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("Indeed X-ray: %s contract roles", title),
		Category:    models.CategoryJobSearch,
		Priority:    1,
	}}
}
