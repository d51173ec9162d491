package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

type Monster struct{}

func (Monster) Name() string {
	return BuilderMonster
}

func (Monster) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle

	q := "site:monster.com"
	q = withQuoted(q, title)
	q = withGroup(q, quotedOr("contract", "temporary"))
	// Location is appended even when empty, unlike every other builder.
	// Kept as-is; the behavior is pinned in builders_test.go.
	q += " " + quote(p.Location)

	return []models.SearchQuery{{
		Query:       q,
		Platform:    models.PlatformMonster,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("Monster X-ray: %s contract roles", title),
		Category:    models.CategoryJobSearch,
		Priority:    2,
	}}
}
