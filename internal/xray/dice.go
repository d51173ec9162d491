package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

// Dice emits a job-detail X-ray and, when the profile carries a visa
// status, a visa-acceptance query.
type Dice struct{}

func (Dice) Name() string {
	return BuilderDice
}

func (Dice) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle

	q := "site:dice.com/job-detail"
	q = withQuoted(q, title)
	q = withGroup(q, skillClause(p.PrimarySkills, 4))
	q = withQuoted(q, p.Location)
	q = withGroup(q, quotedOr("contract", "c2c"))
	queries := []models.SearchQuery{{
		Query:       q,
		Platform:    models.PlatformDice,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("Dice X-ray: %s contract roles", title),
		Category:    models.CategoryJobSearch,
		Priority:    1,
	}}

	if p.VisaStatus != "" {
		q2 := "site:dice.com"
		q2 = withQuoted(q2, title)
		q2 = withGroup(q2, quotedOr(p.VisaStatus, "all visas", "any visa"))
		queries = append(queries, models.SearchQuery{
			Query:       q2,
			Platform:    models.PlatformDice,
			SearchURL:   SearchURL(q2),
			Description: fmt.Sprintf("Dice X-ray: %s roles accepting %s", title, p.VisaStatus),
			Category:    models.CategoryJobSearch,
			Priority:    2,
		})
	}

	return queries
}
