package xray

import (
	"github.com/benchsales/xraycli/internal/models"
)

// Builder constructs zero or more search queries for one platform or
// search family. Builders are pure: no I/O, no shared state, safe to run
// concurrently against the same params.
type Builder interface {
	Name() string
	Build(params models.SearchParams) []models.SearchQuery
}

const (
	BuilderLinkedIn      = "linkedin"
	BuilderDice          = "dice"
	BuilderIndeed        = "indeed"
	BuilderMonster       = "monster"
	BuilderCareerBuilder = "careerbuilder"
	BuilderZipRecruiter  = "ziprecruiter"
	BuilderTechFetch     = "techfetch"
	BuilderVendorHunt    = "vendor-hunt"
	BuilderDirectClient  = "direct-client"
	BuilderCorpCorp      = "corp-corp"
	BuilderVMSMSP        = "vms-msp"
	BuilderEmailHarvest  = "email-harvest"
)

// Registry returns every builder in its fixed invocation order. The order
// is part of the output contract: consumers rely on it as the tie-break
// when sorting by priority.
func Registry() []Builder {
	return []Builder{
		LinkedIn{},
		Dice{},
		Indeed{},
		Monster{},
		CareerBuilder{},
		ZipRecruiter{},
		TechFetch{},
		VendorHunt{},
		DirectClient{},
		CorpCorp{},
		VMSMSP{},
		EmailHarvest{},
	}
}
