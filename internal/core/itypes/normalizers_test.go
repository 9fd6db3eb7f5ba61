package itypes

import (
	"regexp"
	"testing"
)

func TestNormalizeDirection(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"north", "N"},
		{"West", "W"},
		{"s", "S"},
		{"NORTHEAST", "NE"},
		{"southwest", "SW"},
		{"nw", "NW"},
		{"N.", "N."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeDirection(tt.input); got != tt.want {
				t.Errorf("NormalizeDirection(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeStreet(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"MANHATTAN AVE", "Manhattan Avenue"},
		{"west 20th str", "West 20th Street"},
		{"1ST ST", "1st Street"},
		{"22ND BLVD", "22nd Boulevard"},
		{"3rd rd", "3rd Road"},
		{"gracie square", "Gracie Square"},
		{"elm ct", "Elm Court"},
		{"  park   ", "Park"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeStreet(tt.input); got != tt.want {
				t.Errorf("NormalizeStreet(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSecondary(t *testing.T) {
	if got := NormalizeSecondary("  apt   4b "); got != "APT 4B" {
		t.Errorf("NormalizeSecondary() = %q, want %q", got, "APT 4B")
	}
}

func TestStripNotAvailable(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"N/A", ""},
		{"na", ""},
		{"12 Main St  N/A", "12 Main St"},
		{"NATHAN ST", "NATHAN ST"},
		{"  1   Elm  ", "1 Elm"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := StripNotAvailable(tt.input); got != tt.want {
				t.Errorf("StripNotAvailable(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDirectionPattern(t *testing.T) {
	re := regexp.MustCompile(`^(?:` + ReDirection + `)$`)

	for _, s := range []string{"N", "n.", "North", "NORTH", "NE", "N.E.", "northeast", "SouthWest"} {
		if !re.MatchString(s) {
			t.Errorf("direction pattern should match %q", s)
		}
	}
	for _, s := range []string{"Northward", "X", "EN"} {
		if re.MatchString(s) {
			t.Errorf("direction pattern should not match %q", s)
		}
	}
}

func TestSuffixTable(t *testing.T) {
	tests := map[string]string{
		"ave":    "avenue",
		"st":     "street",
		"blvd":   "boulevard",
		"centre": "center",
		"loops":  "loop",
	}
	for variant, want := range tests {
		if got := SuffixToFull[variant]; got != want {
			t.Errorf("SuffixToFull[%q] = %q, want %q", variant, got, want)
		}
	}
	if _, ok := SuffixToFull["street"]; ok {
		t.Error("full names should not be remapped")
	}
}
