package ui

import (
	"strings"
	"testing"
)

func TestColorizeEnabled(t *testing.T) {
	SetColor(true)
	defer SetColor(true)

	got := colorize(Red, "hello")
	if !strings.HasPrefix(got, Red) {
		t.Errorf("colorize() missing color prefix")
	}
	if !strings.HasSuffix(got, Reset) {
		t.Errorf("colorize() missing reset suffix")
	}
}

func TestColorizeDisabled(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	got := colorize(Red, "hello")
	if got != "hello" {
		t.Errorf("colorize() with color disabled = %q, want %q", got, "hello")
	}
}

func TestColorFunctions(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	tests := []struct {
		name string
		fn   func(string, ...any) string
	}{
		{name: "Boldf", fn: Boldf},
		{name: "Redf", fn: Redf},
		{name: "Greenf", fn: Greenf},
		{name: "Cyanf", fn: Cyanf},
		{name: "Dimf", fn: Dimf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn("hello %s", "world"); got != "hello world" {
				t.Errorf("%s() = %q, want %q", tt.name, got, "hello world")
			}
		})
	}
}

func TestDaylightColor(t *testing.T) {
	SetColor(true)
	defer SetColor(true)

	tests := []struct {
		hour int
		want string
	}{
		{0, Blue},
		{5, Blue},
		{6, Yellow},
		{12, Yellow},
		{17, Yellow},
		{18, Blue},
		{23, Blue},
	}
	for _, tt := range tests {
		got := DaylightColor(tt.hour, "12:00:00")
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("DaylightColor(%d) = %q, want prefix %q", tt.hour, got, tt.want)
		}
	}

	SetColor(false)
	if got := DaylightColor(12, "12:00:00"); got != "12:00:00" {
		t.Errorf("DaylightColor() with color disabled = %q", got)
	}
}
