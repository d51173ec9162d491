package xray

import (
	"fmt"

	"github.com/benchsales/xraycli/internal/models"
)

// VMSMSP targets contingent-staffing programs run through vendor management
// systems (Fieldglass, Beeline, and similar).
type VMSMSP struct{}

func (VMSMSP) Name() string {
	return BuilderVMSMSP
}

func (VMSMSP) Build(p models.SearchParams) []models.SearchQuery {
	title := p.JobTitle

	q := group(quotedOr(title))
	q = withGroup(q, quotedOr("fieldglass", "beeline", "workforce logiq", "vms", "managed service"))
	q = withGroup(q, quotedOr("contract", "contingent"))
	q = withQuoted(q, p.Location)

	return []models.SearchQuery{{
		Query:       q,
		Platform:    models.PlatformGoogle,
		SearchURL:   SearchURL(q),
		Description: fmt.Sprintf("VMS/MSP programs: %s contingent roles", title),
		Category:    models.CategoryJobSearch,
		Priority:    3,
	}}
}
