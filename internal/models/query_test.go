package models

import "testing"

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Platform
		wantErr bool
	}{
		{"exact", "linkedin", PlatformLinkedIn, false},
		{"uppercase", "DICE", PlatformDice, false},
		{"whitespace", "  indeed  ", PlatformIndeed, false},
		{"www prefix", "www.monster", PlatformMonster, false},
		{"zip alias", "zip", PlatformZipRecruiter, false},
		{"zip hyphen alias", "zip-recruiter", PlatformZipRecruiter, false},
		{"c2c alias", "c2c", PlatformCorpCorp, false},
		{"corpcorp alias", "corpcorp", PlatformCorpCorp, false},
		{"canonical corp-corp", "corp-corp", PlatformCorpCorp, false},
		{"google", "google", PlatformGoogle, false},
		{"unknown", "myspace", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePlatform(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %s", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlatform(%q): %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParsePlatform(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestPlatformsCoversEveryConstant(t *testing.T) {
	platforms := Platforms()
	if len(platforms) != 10 {
		t.Fatalf("expected 10 platforms, got %d", len(platforms))
	}

	seen := map[Platform]struct{}{}
	for _, platform := range platforms {
		if _, dup := seen[platform]; dup {
			t.Fatalf("duplicate platform %s", platform)
		}
		seen[platform] = struct{}{}
	}
}
