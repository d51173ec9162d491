package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

// DirectClient targets postings that bypass intermediary vendors: corporate
// career sites (excluding the major boards) and government contract portals.
type DirectClient struct{}

func (DirectClient) Name() string {
	return BuilderDirectClient
}

func (DirectClient) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle
	skills := skillClause(p.PrimarySkills, 3)

	q := "inurl:careers OR inurl:jobs"
	q = withQuoted(q, title)
	q = withGroup(q, skills)
	q = withTerm(q, quote("contract"))
	q = withTerm(q, "-site:linkedin.com -site:indeed.com -site:dice.com -site:monster.com -site:ziprecruiter.com")
	q = withQuoted(q, p.Location)
	careers := models.SearchQuery{
		Query:       q,
		Platform:    models.PlatformGoogle,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("Direct client search: %s on corporate career sites", title),
		Category:    models.CategoryJobSearch,
		Priority:    1,
	}

	q2 := `(site:governmentjobs.com OR site:usajobs.gov OR "state contract")`
	q2 = withQuoted(q2, title)
	q2 = withGroup(q2, skills)
	q2 = withQuoted(q2, p.Location)
	government := models.SearchQuery{
		Query:       q2,
		Platform:    models.PlatformGoogle,
		SearchURL:   SearchURL(q2),
		Description: fmt.Sprintf("Government/state contracts: %s", title),
		Category:    models.CategoryJobSearch,
		Priority:    3,
	}

	return []models.SearchQuery{careers, government}
}
