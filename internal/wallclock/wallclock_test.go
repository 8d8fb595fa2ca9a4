package wallclock

import (
	"errors"
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	// 2026-01-15 is outside DST for both London and Tokyo.
	now := time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		tz   string
		want Time
	}{
		{"London", "Europe/London", Time{14, 30, 0}},
		{"Tokyo", "Asia/Tokyo", Time{23, 30, 0}},
		{"New York", "America/New_York", Time{9, 30, 0}},
		{"Kolkata half hour", "Asia/Kolkata", Time{20, 0, 0}},
		{"UTC", "UTC", Time{14, 30, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(now, tt.tz)
			if got != tt.want {
				t.Errorf("Resolve(%s) = %+v, want %+v", tt.tz, got, tt.want)
			}
		})
	}
}

func TestResolveMidnightIsZero(t *testing.T) {
	now := time.Date(2026, 1, 15, 15, 0, 0, 0, time.UTC)
	got := Resolve(now, "Asia/Tokyo")
	if got.Hour != 0 {
		t.Errorf("Resolve at Tokyo midnight hour = %d, want 0", got.Hour)
	}
}

func TestResolveInvalidTimezoneFallsBack(t *testing.T) {
	loc := time.FixedZone("TEST", 3*3600)
	now := time.Date(2026, 6, 1, 7, 8, 9, 0, loc)

	for _, tz := range []string{"Not/AZone", "", "   ", "Invalid/Timezone"} {
		got, ok := Lookup(now, tz)
		if ok {
			t.Errorf("Lookup(%q) ok = true, want false", tz)
		}
		want := Time{7, 8, 9}
		if got != want {
			t.Errorf("Lookup(%q) = %+v, want %+v", tz, got, want)
		}
	}
}

func TestResolveRanges(t *testing.T) {
	zones := []string{
		"Europe/Stockholm", "America/Los_Angeles", "Asia/Shanghai",
		"Australia/Sydney", "Pacific/Kiritimati", "Pacific/Chatham", "America/St_Johns",
	}
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, tz := range zones {
		for i := 0; i < 48; i++ {
			got, ok := Lookup(start.Add(time.Duration(i)*37*time.Minute+11*time.Second), tz)
			if !ok {
				t.Fatalf("Lookup(%s) did not resolve", tz)
			}
			if got.Hour < 0 || got.Hour > 23 || got.Minute < 0 || got.Minute > 59 || got.Second < 0 || got.Second > 59 {
				t.Errorf("Lookup(%s) out of range: %+v", tz, got)
			}
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	now := time.Date(2026, 7, 4, 18, 45, 12, 0, time.UTC)
	for _, tz := range []string{"Europe/Paris", "Not/AZone"} {
		a := Resolve(now, tz)
		b := Resolve(now, tz)
		if a != b {
			t.Errorf("Resolve(%s) not idempotent: %+v vs %+v", tz, a, b)
		}
	}
}

func TestFormatDigital(t *testing.T) {
	tests := []struct {
		in   Time
		want string
	}{
		{Time{9, 5, 3}, "09:05:03"},
		{Time{0, 0, 0}, "00:00:00"},
		{Time{23, 59, 59}, "23:59:59"},
		{Time{12, 30, 0}, "12:30:00"},
	}
	for _, tt := range tests {
		if got := FormatDigital(tt.in); got != tt.want {
			t.Errorf("FormatDigital(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("Asia/Bangkok"); err != nil {
		t.Errorf("Validate(Asia/Bangkok) unexpected error: %v", err)
	}
	err := Validate("Not/AZone")
	if err == nil {
		t.Fatal("Validate(Not/AZone) expected error")
	}
	if !errors.Is(err, ErrUnresolvable) {
		t.Errorf("Validate error = %v, want ErrUnresolvable", err)
	}
	if err := Validate(""); err == nil {
		t.Error("Validate(\"\") expected error")
	}
}

func TestUTCOffset(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		tz   string
		want string
	}{
		{"Europe/London", "UTC+0"},
		{"Asia/Tokyo", "UTC+9"},
		{"America/New_York", "UTC-5"},
		{"Asia/Kolkata", "UTC+5:30"},
		{"Not/AZone", "UTC+0"},
	}
	for _, tt := range tests {
		if got := UTCOffset(now, tt.tz); got != tt.want {
			t.Errorf("UTCOffset(%s) = %q, want %q", tt.tz, got, tt.want)
		}
	}
}

func TestIn(t *testing.T) {
	now := time.Date(2026, 1, 15, 20, 0, 0, 0, time.UTC)
	got := In(now, "Asia/Tokyo")
	if got.Day() != 16 {
		t.Errorf("In(Tokyo).Day() = %d, want 16", got.Day())
	}
	if !In(now, "Not/AZone").Equal(now) {
		t.Error("In(invalid) should return the instant unchanged")
	}
}
