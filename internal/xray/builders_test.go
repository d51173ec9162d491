package xray

import (
	"strings"
	"testing"

	"github.com/benchsales/xraycli/internal/models"
)

func TestRegistryOrderIsFixed(t *testing.T) {
	want := []string{
		BuilderLinkedIn,
		BuilderDice,
		BuilderIndeed,
		BuilderMonster,
		BuilderCareerBuilder,
		BuilderZipRecruiter,
		BuilderTechFetch,
		BuilderVendorHunt,
		BuilderDirectClient,
		BuilderCorpCorp,
		BuilderVMSMSP,
		BuilderEmailHarvest,
	}

	registry := Registry()
	if len(registry) != len(want) {
		t.Fatalf("registry has %d builders, want %d", len(registry), len(want))
	}
	for i, builder := range registry {
		if builder.Name() != want[i] {
			t.Fatalf("registry[%d] = %s, want %s", i, builder.Name(), want[i])
		}
	}
}

func TestSiteRestrictions(t *testing.T) {
	params := sampleParams()

	cases := []struct {
		builder Builder
		prefix  string
	}{
		{LinkedIn{}, "site:linkedin.com/jobs"},
		{Dice{}, "site:dice.com/job-detail"},
		{Indeed{}, "site:indeed.com/viewjob"},
		{Monster{}, "site:monster.com"},
		{CareerBuilder{}, "site:careerbuilder.com"},
		{ZipRecruiter{}, "site:ziprecruiter.com/jobs"},
		{TechFetch{}, "site:techfetch.com"},
	}

	for _, tc := range cases {
		t.Run(tc.builder.Name(), func(t *testing.T) {
			queries := tc.builder.Build(params)
			if len(queries) == 0 {
				t.Fatal("expected at least one query")
			}
			if !strings.HasPrefix(queries[0].Query, tc.prefix) {
				t.Fatalf("query %q does not start with %q", queries[0].Query, tc.prefix)
			}
		})
	}
}

func TestLinkedInEmitsFourQueryFamilies(t *testing.T) {
	queries := LinkedIn{}.Build(sampleParams())
	if len(queries) != 4 {
		t.Fatalf("expected 4 queries, got %d", len(queries))
	}

	prefixes := []string{
		"site:linkedin.com/jobs",
		"site:linkedin.com/in",
		"site:linkedin.com/company",
		"site:linkedin.com/posts",
	}
	categories := []string{
		models.CategoryJobSearch,
		models.CategoryContactFind,
		models.CategoryVendorHunt,
		models.CategoryJobSearch,
	}
	priorities := []int{1, 2, 3, 1}

	for i, query := range queries {
		if !strings.HasPrefix(query.Query, prefixes[i]) {
			t.Fatalf("query %d = %q, want prefix %q", i, query.Query, prefixes[i])
		}
		if query.Category != categories[i] {
			t.Fatalf("query %d category = %q, want %q", i, query.Category, categories[i])
		}
		if query.Priority != priorities[i] {
			t.Fatalf("query %d priority = %d, want %d", i, query.Priority, priorities[i])
		}
		if query.Platform != models.PlatformLinkedIn {
			t.Fatalf("query %d platform = %s", i, query.Platform)
		}
	}
}

func TestDiceVisaQueryIsConditional(t *testing.T) {
	params := sampleParams()
	queries := Dice{}.Build(params)
	if len(queries) != 2 {
		t.Fatalf("expected 2 queries with visa status, got %d", len(queries))
	}
	if !strings.Contains(queries[1].Query, `"H1B"`) || !strings.Contains(queries[1].Query, `"any visa"`) {
		t.Fatalf("visa query missing visa terms: %s", queries[1].Query)
	}

	params.VisaStatus = ""
	queries = Dice{}.Build(params)
	if len(queries) != 1 {
		t.Fatalf("expected 1 query without visa status, got %d", len(queries))
	}
}

// Monster appends the location term even when it is empty.
func TestMonsterAppendsLocationUnconditionally(t *testing.T) {
	params := sampleParams()
	params.Location = ""

	queries := Monster{}.Build(params)
	if len(queries) != 1 {
		t.Fatalf("expected 1 query, got %d", len(queries))
	}
	if !strings.HasSuffix(queries[0].Query, ` ""`) {
		t.Fatalf("expected trailing empty location term, got %q", queries[0].Query)
	}
}

func TestSkillCountsPerBuilder(t *testing.T) {
	params := models.SearchParams{
		JobTitle:      "Java Developer",
		PrimarySkills: []string{"One", "Two", "Three", "Four", "Five"},
	}

	// LinkedIn and Dice take four skills, Indeed three.
	linkedin := LinkedIn{}.Build(params)[0].Query
	if !strings.Contains(linkedin, `"Four"`) || strings.Contains(linkedin, `"Five"`) {
		t.Fatalf("linkedin should carry exactly four skills: %s", linkedin)
	}

	dice := Dice{}.Build(params)[0].Query
	if !strings.Contains(dice, `"Four"`) || strings.Contains(dice, `"Five"`) {
		t.Fatalf("dice should carry exactly four skills: %s", dice)
	}

	indeed := Indeed{}.Build(params)[0].Query
	if !strings.Contains(indeed, `"Three"`) || strings.Contains(indeed, `"Four"`) {
		t.Fatalf("indeed should carry exactly three skills: %s", indeed)
	}
}

func TestDirectClientExcludesMajorBoards(t *testing.T) {
	queries := DirectClient{}.Build(sampleParams())
	if len(queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(queries))
	}

	careers := queries[0].Query
	for _, excluded := range []string{"-site:linkedin.com", "-site:indeed.com", "-site:dice.com", "-site:monster.com", "-site:ziprecruiter.com"} {
		if !strings.Contains(careers, excluded) {
			t.Fatalf("career-site query missing exclusion %s: %s", excluded, careers)
		}
	}

	government := queries[1].Query
	if !strings.Contains(government, "site:usajobs.gov") {
		t.Fatalf("government query missing site hint: %s", government)
	}
	if government[len(government)-1:] == " " {
		t.Fatalf("trailing space in query: %q", government)
	}
}

func TestVendorHuntTargetsSubmissionRequests(t *testing.T) {
	queries := VendorHunt{}.Build(sampleParams())
	if len(queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(queries))
	}

	emails := queries[0]
	if emails.Category != models.CategoryVendorHunt || emails.Priority != 1 {
		t.Fatalf("unexpected metadata: %+v", emails)
	}
	for _, term := range []string{`"send resume"`, `"@"`, `".com"`} {
		if !strings.Contains(emails.Query, term) {
			t.Fatalf("email query missing %s: %s", term, emails.Query)
		}
	}

	firms := queries[1]
	if !strings.Contains(firms.Query, `"united states"`) {
		t.Fatalf("staffing-firm query missing country anchor: %s", firms.Query)
	}
}

func TestCorpCorpQueries(t *testing.T) {
	queries := CorpCorp{}.Build(sampleParams())
	if len(queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(queries))
	}

	for _, query := range queries {
		if query.Platform != models.PlatformCorpCorp {
			t.Fatalf("platform = %s, want %s", query.Platform, models.PlatformCorpCorp)
		}
	}
	if !strings.Contains(queries[0].Query, `"requirement" OR "position" OR "opening" OR "need"`) {
		t.Fatalf("requirement phrases missing: %s", queries[0].Query)
	}
	if !strings.Contains(queries[1].Query, "site:c2crequirements.com OR site:c2cjobs.com") {
		t.Fatalf("c2c boards missing: %s", queries[1].Query)
	}
}

func TestVMSQueryNamesPlatforms(t *testing.T) {
	queries := VMSMSP{}.Build(sampleParams())
	if len(queries) != 1 {
		t.Fatalf("expected 1 query, got %d", len(queries))
	}
	for _, term := range []string{`"fieldglass"`, `"beeline"`, `"contingent"`} {
		if !strings.Contains(queries[0].Query, term) {
			t.Fatalf("vms query missing %s: %s", term, queries[0].Query)
		}
	}
	if queries[0].Priority != 3 {
		t.Fatalf("priority = %d, want 3", queries[0].Priority)
	}
}

func TestEmailHarvestQuery(t *testing.T) {
	queries := EmailHarvest{}.Build(sampleParams())
	if len(queries) != 1 {
		t.Fatalf("expected 1 query, got %d", len(queries))
	}

	query := queries[0]
	if query.Category != models.CategoryContactFind {
		t.Fatalf("category = %q", query.Category)
	}
	for _, term := range []string{`"bench sales"`, `"submit resume"`, `"gmail.com"`} {
		if !strings.Contains(query.Query, term) {
			t.Fatalf("email harvest query missing %s: %s", term, query.Query)
		}
	}
}
