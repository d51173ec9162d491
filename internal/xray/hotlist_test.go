package xray

import (
	"strings"
	"testing"
)

func TestHotlistQueries(t *testing.T) {
	queries := Hotlist{}.Build(sampleParams())
	if len(queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(queries))
	}

	lists := queries[0]
	if !strings.Contains(lists.Query, `"hotlist"`) {
		t.Fatalf("hotlist term missing: %s", lists.Query)
	}
	if lists.Priority != 1 {
		t.Fatalf("priority = %d, want 1", lists.Priority)
	}

	groups := queries[1]
	if !strings.Contains(groups.Query, "site:groups.google.com") {
		t.Fatalf("mailing-list site missing: %s", groups.Query)
	}
	if groups.Priority != 3 {
		t.Fatalf("priority = %d, want 3", groups.Priority)
	}
}

func TestHotlistAnchorsOnSkillsBeforeTitle(t *testing.T) {
	queries := Hotlist{}.Build(sampleParams())

	query := queries[0].Query
	skillIdx := strings.Index(query, `"Java"`)
	titleIdx := strings.Index(query, `"Java Developer"`)
	if skillIdx == -1 || titleIdx == -1 {
		t.Fatalf("anchor terms missing: %s", query)
	}
	if skillIdx > titleIdx {
		t.Fatalf("skills should precede the title: %s", query)
	}
}
