package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

type CareerBuilder struct{}

func (CareerBuilder) Name() string {
	return BuilderCareerBuilder
}

func (CareerBuilder) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle

	q := "site:careerbuilder.com"
	q = withQuoted(q, title)
	q = withGroup(q, quotedOr("contract", "c2c"))
	q = withQuoted(q, p.Location)

	return []models.SearchQuery{{
		Query:       q,
		Platform:    models.PlatformCareerBuilder,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("CareerBuilder X-ray: %s contract roles", title),
		Category:    models.CategoryJobSearch,
		Priority:    3,
	}}
}
