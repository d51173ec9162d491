package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParamsAppliesEmploymentTypeDefault(t *testing.T) {
	consultant := Consultant{
		JobTitle:      "Java Developer",
		PrimarySkills: []string{"Java", "Spring Boot"},
	}

	params := consultant.Params()
	if len(params.EmploymentTypes) != 1 || params.EmploymentTypes[0] != "C2C" {
		t.Fatalf("employment types = %v, want [C2C]", params.EmploymentTypes)
	}
}

func TestParamsKeepsExplicitEmploymentTypes(t *testing.T) {
	consultant := Consultant{
		JobTitle:        "Java Developer",
		EmploymentTypes: []string{"C2C", "1099"},
	}

	params := consultant.Params()
	if len(params.EmploymentTypes) != 2 {
		t.Fatalf("employment types = %v", params.EmploymentTypes)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consultant.json")
	want := Consultant{
		Name:            "A. Consultant",
		JobTitle:        "Data Engineer",
		PrimarySkills:   []string{"Python", "Spark"},
		Location:        "Austin, TX",
		RemoteOK:        true,
		VisaStatus:      "H1B",
		ExperienceYears: 7.5,
		RateRange:       "$60-70/hr",
	}

	if err := Write(path, want); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.JobTitle != want.JobTitle || got.Location != want.Location || got.ExperienceYears != want.ExperienceYears {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
	if len(got.PrimarySkills) != 2 || got.PrimarySkills[0] != "Python" {
		t.Fatalf("skills = %v", got.PrimarySkills)
	}
}

func TestReadRejectsMissingAndEmptyFiles(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, []byte("  \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(empty); err == nil {
		t.Fatal("expected error for empty file")
	}

	if _, err := Read(""); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestReadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"job_title": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Fatal("expected parse error")
	}
}
