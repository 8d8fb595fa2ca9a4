// Package cities holds the saved city list and the built-in city catalog.
package cities

import (
	"fmt"
	"sort"
	"strings"

	"github.com/moggisen/World-Clock/internal/wallclock"
)

// City is a saved clock: a display name bound to an IANA timezone.
type City struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

// CommonCity is an entry of the add-city dropdown.
type CommonCity struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	Emoji    string `json:"emoji"`
}

var commonCities = []CommonCity{
	{Name: "Stockholm", Timezone: "Europe/Stockholm", Emoji: "🇸🇪"},
	{Name: "Paris", Timezone: "Europe/Paris", Emoji: "🇫🇷"},
	{Name: "London", Timezone: "Europe/London", Emoji: "🇬🇧"},
	{Name: "New York", Timezone: "America/New_York", Emoji: "🇺🇸"},
	{Name: "Los Angeles", Timezone: "America/Los_Angeles", Emoji: "🇺🇸"},
	{Name: "Tokyo", Timezone: "Asia/Tokyo", Emoji: "🇯🇵"},
	{Name: "Shanghai", Timezone: "Asia/Shanghai", Emoji: "🇨🇳"},
	{Name: "Sydney", Timezone: "Australia/Sydney", Emoji: "🇦🇺"},
}

// CommonCities returns the cities offered in the add-city dropdown.
func CommonCities() []CommonCity {
	out := make([]CommonCity, len(commonCities))
	copy(out, commonCities)
	return out
}

// cityMap maps lowercase city names to their IANA timezone identifiers.
var cityMap = map[string]string{
	// Americas
	"new york":     "America/New_York",
	"los angeles":  "America/Los_Angeles",
	"chicago":      "America/Chicago",
	"toronto":      "America/Toronto",
	"vancouver":    "America/Vancouver",
	"mexico city":  "America/Mexico_City",
	"sao paulo":    "America/Sao_Paulo",
	"buenos aires": "America/Argentina/Buenos_Aires",
	"lima":         "America/Lima",
	"bogota":       "America/Bogota",
	// Europe
	"stockholm": "Europe/Stockholm",
	"london":    "Europe/London",
	"paris":     "Europe/Paris",
	"berlin":    "Europe/Berlin",
	"madrid":    "Europe/Madrid",
	"rome":      "Europe/Rome",
	"amsterdam": "Europe/Amsterdam",
	"moscow":    "Europe/Moscow",
	"istanbul":  "Europe/Istanbul",
	"zurich":    "Europe/Zurich",
	"warsaw":    "Europe/Warsaw",
	// Asia
	"tokyo":     "Asia/Tokyo",
	"shanghai":  "Asia/Shanghai",
	"beijing":   "Asia/Shanghai",
	"hong kong": "Asia/Hong_Kong",
	"singapore": "Asia/Singapore",
	"seoul":     "Asia/Seoul",
	"mumbai":    "Asia/Kolkata",
	"delhi":     "Asia/Kolkata",
	"bangkok":   "Asia/Bangkok",
	"jakarta":   "Asia/Jakarta",
	"taipei":    "Asia/Taipei",
	// Middle East
	"dubai":  "Asia/Dubai",
	"doha":   "Asia/Qatar",
	"riyadh": "Asia/Riyadh",
	// Oceania
	"sydney":    "Australia/Sydney",
	"melbourne": "Australia/Melbourne",
	"auckland":  "Pacific/Auckland",
	// Africa
	"cairo":        "Africa/Cairo",
	"johannesburg": "Africa/Johannesburg",
	"nairobi":      "Africa/Nairobi",
}

// Lookup returns the timezone of a known city name, matched case-insensitively.
func Lookup(name string) (string, bool) {
	tz, ok := cityMap[strings.ToLower(strings.TrimSpace(name))]
	return tz, ok
}

// ParseCities takes a list of city name arguments and returns the corresponding
// cities. It returns an error if any city name is not recognized.
// Parsed cities carry no ID; they are not saved.
func ParseCities(args []string) ([]City, error) {
	var cities []City
	var unknown []string

	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			continue
		}
		tz, ok := Lookup(arg)
		if !ok || wallclock.Validate(tz) != nil {
			unknown = append(unknown, arg)
			continue
		}
		cities = append(cities, City{Name: titleCase(arg), Timezone: tz})
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown city/cities: %s\nUse one of: %s",
			strings.Join(unknown, ", "),
			availableCities())
	}

	if len(cities) == 0 {
		return nil, fmt.Errorf("no valid cities specified")
	}

	return cities, nil
}

// availableCities returns a sorted, comma-separated list of known city names.
func availableCities() string {
	names := make([]string, 0, len(cityMap))
	for name := range cityMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// titleCase converts a string to title case (first letter of each word capitalized).
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
