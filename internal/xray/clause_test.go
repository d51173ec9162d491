package xray

import (
	"strings"
	"testing"
)

func TestQuotedOr(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"single", []string{"c2c"}, `"c2c"`},
		{"multiple", []string{"c2c", "contract"}, `"c2c" OR "contract"`},
		{"skips blanks", []string{"", "c2c", "  ", "contract"}, `"c2c" OR "contract"`},
		{"all blank", []string{"", "  "}, ""},
		{"none", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := quotedOr(tc.values...); got != tc.want {
				t.Fatalf("quotedOr(%v) = %q, want %q", tc.values, got, tc.want)
			}
		})
	}
}

func TestSkillClauseTruncates(t *testing.T) {
	got := skillClause([]string{"Java", "Spring", "AWS", "Kafka"}, 2)
	want := `"Java" OR "Spring"`
	if got != want {
		t.Fatalf("skillClause = %q, want %q", got, want)
	}

	if got := skillClause(nil, 3); got != "" {
		t.Fatalf("skillClause(nil) = %q, want empty", got)
	}
}

func TestWithHelpersSkipEmpties(t *testing.T) {
	q := "site:example.com"
	q = withQuoted(q, "")
	q = withGroup(q, "")
	q = withTerm(q, "")
	if q != "site:example.com" {
		t.Fatalf("helpers appended empty clauses: %q", q)
	}

	q = withQuoted(q, "Java Developer")
	q = withGroup(q, quotedOr("c2c", "contract"))
	want := `site:example.com "Java Developer" ("c2c" OR "contract")`
	if q != want {
		t.Fatalf("got %q, want %q", q, want)
	}
}

func TestWithHelpersStartFromEmptyQuery(t *testing.T) {
	q := withQuoted("", "Java Developer")
	if q != `"Java Developer"` {
		t.Fatalf("got %q", q)
	}

	q = withGroup("", quotedOr("c2c"))
	if q != `("c2c")` {
		t.Fatalf("got %q", q)
	}
}

func TestTitleOrSkillsOrdering(t *testing.T) {
	got := titleOrSkills("Java Developer", []string{"Java", "Spring"}, 2)
	want := `"Java Developer" OR "Java" OR "Spring"`
	if got != want {
		t.Fatalf("titleOrSkills = %q, want %q", got, want)
	}

	got = skillsOrTitle([]string{"Java", "Spring"}, "Java Developer", 2)
	want = `"Java" OR "Spring" OR "Java Developer"`
	if got != want {
		t.Fatalf("skillsOrTitle = %q, want %q", got, want)
	}
}

func TestHasContractTerm(t *testing.T) {
	if !HasContractTerm(`site:dice.com "Java" ("C2C" OR "contract")`) {
		t.Fatal("expected contract term to be detected")
	}
	if HasContractTerm(`site:linkedin.com/in "bench sales"`) {
		t.Fatal("did not expect a contract term")
	}
}

func TestContractTermsExcludeW2(t *testing.T) {
	for _, term := range contractTerms {
		if strings.Contains(strings.ToLower(term), "w2") {
			t.Fatalf("w2 must never appear in contract terms: %s", term)
		}
	}
}
