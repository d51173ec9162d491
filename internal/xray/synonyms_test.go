package xray

import "testing"

func TestRoleSynonymsKnownRole(t *testing.T) {
	synonyms := RoleSynonyms("Java Developer")
	if len(synonyms) <= 1 {
		t.Fatalf("expected multiple synonyms, got %v", synonyms)
	}

	found := false
	for _, synonym := range synonyms {
		if synonym == "java developer" {
			found = true
		}
	}
	if !found {
		t.Fatalf("canonical role missing from its own synonym list: %v", synonyms)
	}
}

func TestRoleSynonymsCaseInsensitive(t *testing.T) {
	upper := RoleSynonyms("  JAVA DEVELOPER  ")
	lower := RoleSynonyms("java developer")

	if len(upper) != len(lower) {
		t.Fatalf("case/whitespace variants disagree: %v vs %v", upper, lower)
	}
	for i := range upper {
		if upper[i] != lower[i] {
			t.Fatalf("case/whitespace variants disagree at %d: %v vs %v", i, upper, lower)
		}
	}
}

func TestRoleSynonymsUnknownRole(t *testing.T) {
	synonyms := RoleSynonyms("Quantum Computing Specialist")
	if len(synonyms) != 1 || synonyms[0] != "Quantum Computing Specialist" {
		t.Fatalf("unknown role should echo itself, got %v", synonyms)
	}
}

func TestRoleSynonymsReturnsCopy(t *testing.T) {
	first := RoleSynonyms("devops engineer")
	first[0] = "mutated"

	second := RoleSynonyms("devops engineer")
	if second[0] == "mutated" {
		t.Fatal("mutating the returned slice must not affect later lookups")
	}
}
