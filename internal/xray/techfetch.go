package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

type TechFetch struct{}

func (TechFetch) Name() string {
	return BuilderTechFetch
}

func (TechFetch) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle

	q := "site:techfetch.com"
	q = withQuoted(q, title)
	q = withGroup(q, quotedOr("c2c", "contract"))
	q = withQuoted(q, p.Location)

	return []models.SearchQuery{{
		Query:       q,
		Platform:    models.PlatformTechFetch,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("TechFetch X-ray: %s C2C/contract roles", title),
		Category:    models.CategoryJobSearch,
		Priority:    2,
	}}
}
