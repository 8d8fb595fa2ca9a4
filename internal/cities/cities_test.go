package cities

import (
	"testing"

	"github.com/moggisen/World-Clock/internal/wallclock"
)

func TestCommonCities(t *testing.T) {
	common := CommonCities()
	if len(common) != 8 {
		t.Errorf("CommonCities() returned %d cities, want 8", len(common))
	}

	for _, c := range common {
		if c.Name == "" {
			t.Error("CommonCities() contains a city with empty name")
		}
		if err := wallclock.Validate(c.Timezone); err != nil {
			t.Errorf("CommonCities() city %q has invalid timezone: %v", c.Name, err)
		}
	}

	// callers get a copy
	common[0].Name = "changed"
	if CommonCities()[0].Name == "changed" {
		t.Error("CommonCities() exposes its backing slice")
	}
}

func TestLookup(t *testing.T) {
	tz, ok := Lookup("  New York ")
	if !ok || tz != "America/New_York" {
		t.Errorf("Lookup(New York) = %q, %v", tz, ok)
	}
	if _, ok := Lookup("atlantis"); ok {
		t.Error("Lookup(atlantis) ok = true, want false")
	}
}

func TestCityMapTimezonesResolve(t *testing.T) {
	for name, tz := range cityMap {
		if err := wallclock.Validate(tz); err != nil {
			t.Errorf("city %q: %v", name, err)
		}
	}
}

func TestParseCities_ValidCities(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  int
	}{
		{"single city", []string{"london"}, 1},
		{"multiple cities", []string{"london", "tokyo", "paris"}, 3},
		{"case insensitive", []string{"LONDON", "Tokyo", "pArIs"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCities(tt.input)
			if err != nil {
				t.Errorf("ParseCities(%v) unexpected error: %v", tt.input, err)
			}
			if len(result) != tt.want {
				t.Errorf("ParseCities(%v) returned %d cities, want %d", tt.input, len(result), tt.want)
			}
		})
	}
}

func TestParseCities_TitleCase(t *testing.T) {
	result, err := ParseCities([]string{"hong KONG"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result[0].Name != "Hong Kong" {
		t.Errorf("Name = %q, want %q", result[0].Name, "Hong Kong")
	}
	if result[0].Timezone != "Asia/Hong_Kong" {
		t.Errorf("Timezone = %q, want %q", result[0].Timezone, "Asia/Hong_Kong")
	}
}

func TestParseCities_InvalidCities(t *testing.T) {
	_, err := ParseCities([]string{"atlantis"})
	if err == nil {
		t.Error("ParseCities(['atlantis']) expected error, got nil")
	}
}

func TestParseCities_MixedValidInvalid(t *testing.T) {
	_, err := ParseCities([]string{"london", "atlantis"})
	if err == nil {
		t.Error("ParseCities(['london', 'atlantis']) expected error, got nil")
	}
}

func TestParseCities_EmptyInput(t *testing.T) {
	_, err := ParseCities([]string{})
	if err == nil {
		t.Error("ParseCities([]) expected error, got nil")
	}
}

func TestParseCities_WhitespaceOnly(t *testing.T) {
	_, err := ParseCities([]string{"  ", ""})
	if err == nil {
		t.Error("ParseCities with whitespace-only input expected error, got nil")
	}
}
