package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

// CorpCorp targets corp-to-corp requirements directly: open-web requirement
// postings plus the dedicated C2C job boards.
type CorpCorp struct{}

func (CorpCorp) Name() string {
	return BuilderCorpCorp
}

func (CorpCorp) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle
	skills := skillClause(p.PrimarySkills, 3)

	q := withQuoted("", title)
	q = withGroup(q, skills)
	q = withGroup(q, quotedOr("c2c", "corp to corp", "corp-to-corp"))
	q = withGroup(q, quotedOr("requirement", "position", "opening", "need"))
	q = withQuoted(q, p.Location)
	requirements := models.SearchQuery{
		Query:       q,
		Platform:    models.PlatformCorpCorp,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("C2C specific: %s corp-to-corp requirements", title),
		Category:    models.CategoryJobSearch,
		Priority:    1,
	}

	q2 := "(site:c2crequirements.com OR site:c2cjobs.com)"
	q2 = withQuoted(q2, title)
	q2 = withGroup(q2, skills)
	boards := models.SearchQuery{
		Query:       q2,
		Platform:    models.PlatformCorpCorp,
		SearchURL:   SearchURL(q2),
		Description: fmt.Sprintf("C2C job boards: %s", title),
		Category:    models.CategoryJobSearch,
		Priority:    2,
	}

	return []models.SearchQuery{requirements, boards}
}
