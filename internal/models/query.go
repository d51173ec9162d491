package models

import (
	"fmt"
	"strings"
)

// Platform identifies where a generated query is aimed. The set is closed:
// the presentation layer switches on it for grouping and styling, and an
// unrecognized value would silently create a new group.
type Platform string

const (
	PlatformLinkedIn      Platform = "linkedin"
	PlatformDice          Platform = "dice"
	PlatformIndeed        Platform = "indeed"
	PlatformMonster       Platform = "monster"
	PlatformCareerBuilder Platform = "careerbuilder"
	PlatformZipRecruiter  Platform = "ziprecruiter"
	PlatformGlassdoor     Platform = "glassdoor"
	PlatformTechFetch     Platform = "techfetch"
	PlatformGoogle        Platform = "google"
	PlatformCorpCorp      Platform = "corp-corp"
)

// Platforms lists every known platform in display order.
func Platforms() []Platform {
	return []Platform{
		PlatformLinkedIn,
		PlatformDice,
		PlatformIndeed,
		PlatformMonster,
		PlatformCareerBuilder,
		PlatformZipRecruiter,
		PlatformGlassdoor,
		PlatformTechFetch,
		PlatformGoogle,
		PlatformCorpCorp,
	}
}

// ParsePlatform normalizes a user-supplied platform name.
func ParsePlatform(value string) (Platform, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.TrimPrefix(normalized, "www.")
	switch normalized {
	case "zip", "zip-recruiter":
		normalized = string(PlatformZipRecruiter)
	case "c2c", "corp-to-corp", "corpcorp":
		normalized = string(PlatformCorpCorp)
	}
	for _, platform := range Platforms() {
		if normalized == string(platform) {
			return platform, nil
		}
	}
	return "", fmt.Errorf("unknown platform: %s", value)
}

// Query categories. An empty category is treated as "general" by consumers.
const (
	CategoryJobSearch   = "job_search"
	CategoryVendorHunt  = "vendor_hunt"
	CategoryContactFind = "contact_find"
)

// SearchQuery is one generated boolean search expression with metadata.
type SearchQuery struct {
	Query       string   `json:"query"`
	Platform    Platform `json:"platform"`
	SearchURL   string   `json:"search_url"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Priority    int      `json:"priority"` // 1 = highest, 3 = lowest
}
