// Package wallclock converts instants into the wall-clock time of a named timezone.
// The package keeps no state; all functions are safe for concurrent use.
package wallclock

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InvalidTimezoneMessage is the user-facing hint shown when a typed timezone
// cannot be resolved.
const InvalidTimezoneMessage = "Invalid timezone. Use format like 'Asia/Bangkok'."

// ErrUnresolvable is returned by Validate when the host timezone database
// does not know the identifier.
var ErrUnresolvable = errors.New("unresolvable timezone")

// Time is the local hour, minute and second of some timezone at some instant.
// Hour is in 24-hour form; midnight is 0.
type Time struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// Resolve returns the wall-clock time of instant in the timezone named by tz.
// If tz cannot be resolved, the instant's own hour, minute and second are
// returned unconverted.
func Resolve(instant time.Time, tz string) Time {
	t, _ := Lookup(instant, tz)
	return t
}

// Lookup is Resolve that also reports whether tz resolved. When ok is false
// the returned time is the instant read as already local.
func Lookup(instant time.Time, tz string) (t Time, ok bool) {
	loc, err := location(tz)
	if err != nil {
		return fromClock(instant), false
	}
	return fromClock(instant.In(loc)), true
}

// In returns instant converted to tz, or instant unchanged if tz cannot be
// resolved. Renderers use it for the date line and zone abbreviation.
func In(instant time.Time, tz string) time.Time {
	loc, err := location(tz)
	if err != nil {
		return instant
	}
	return instant.In(loc)
}

// Validate reports whether tz names a timezone the host can resolve.
func Validate(tz string) error {
	if _, err := location(tz); err != nil {
		return fmt.Errorf("%w %q: %s", ErrUnresolvable, tz, InvalidTimezoneMessage)
	}
	return nil
}

// FormatDigital renders t as zero-padded HH:MM:SS.
func FormatDigital(t Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// UTCOffset formats the offset of tz at instant as UTC±H or UTC±H:MM.
// An unresolvable tz reports the offset of the instant's own location.
func UTCOffset(instant time.Time, tz string) string {
	_, offset := In(instant, tz).Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes)
}

func location(tz string) (*time.Location, error) {
	// LoadLocation maps "" to UTC; an empty identifier is treated as unset.
	if strings.TrimSpace(tz) == "" {
		return nil, ErrUnresolvable
	}
	return time.LoadLocation(tz)
}

func fromClock(t time.Time) Time {
	h, m, s := t.Clock()
	return Time{Hour: h, Minute: m, Second: s}
}
