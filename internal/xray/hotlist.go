package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

// Hotlist finds requirement hotlists that vendors circulate through the
// open web and mailing-list archives. It runs separately from the main
// registry: hotlists are a bulk-outreach channel, not a per-posting search.
type Hotlist struct{}

func (Hotlist) Name() string {
	return "hotlist"
}

func (Hotlist) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle
	anchor := skillsOrTitle(p.PrimarySkills, title, 3)

	q := group(quotedOr("hotlist", "requirement list", "urgent requirements", "hot list"))
	q = withGroup(q, anchor)
	q = withGroup(q, quotedOr("c2c", "corp to corp", "contract"))
	lists := models.SearchQuery{
		Query:       q,
		Platform:    models.PlatformGoogle,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("Find vendor hotlists with %s requirements", title),
		Category:    models.CategoryJobSearch,
		Priority:    1,
	}

	q2 := `(site:groups.google.com OR "google groups" OR "yahoo groups")`
	q2 = withTerm(q2, quote("requirement"))
	q2 = withGroup(q2, anchor)
	q2 = withGroup(q2, quotedOr("c2c", "contract"))
	groups := models.SearchQuery{
		Query:       q2,
		Platform:    models.PlatformGoogle,
		SearchURL:   SearchURL(q2),
		Description: fmt.Sprintf("Mailing list requirements for %s", title),
		Category:    models.CategoryJobSearch,
		Priority:    3,
	}

	return []models.SearchQuery{lists, groups}
}
