// Package display handles terminal rendering of world clocks with live updates.
package display

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/moggisen/World-Clock/internal/cities"
	"github.com/moggisen/World-Clock/internal/ui"
	"github.com/moggisen/World-Clock/internal/wallclock"
)

const (
	clearScreen = "\033[2J"
	cursorHome  = "\033[H"
)

// Source supplies the cities to draw on each tick.
type Source interface {
	List(ctx context.Context) ([]cities.City, error)
}

// Static is a fixed city list, used when cities are named on the command line.
type Static []cities.City

// List returns the fixed list.
func (s Static) List(context.Context) ([]cities.City, error) {
	return s, nil
}

// Render writes the digital clock list for the given cities to the writer.
func Render(w io.Writer, cityList []cities.City, now time.Time) {
	fmt.Fprint(w, clearScreen+cursorHome)
	fmt.Fprintf(w, "%s %s\n", ui.Boldf("🌍 World Clock"), ui.Dimf("%s", now.Format("Mon Jan 02 2006")))
	fmt.Fprintln(w, strings.Repeat("─", 52))

	if len(cityList) == 0 {
		fmt.Fprintf(w, "  %s\n", ui.Dimf("No cities yet. Add one with: worldclock cities add <name> --tz <zone>"))
	}

	for _, c := range cityList {
		t, ok := wallclock.Lookup(now, c.Timezone)
		marker := ""
		if !ok {
			marker = " " + ui.Dimf("(local time)")
		}
		fmt.Fprintf(w, "  %s %s  %s%s\n",
			ui.Cyanf("%-20s", c.Name),
			ui.DaylightColor(t.Hour, wallclock.FormatDigital(t)),
			ui.Dimf("%-9s", wallclock.UTCOffset(now, c.Timezone)),
			marker,
		)
	}

	fmt.Fprintln(w, strings.Repeat("─", 52))
	fmt.Fprintf(w, "%s\n", ui.Dimf("Press Ctrl+C to exit"))
}

// Run starts a live-updating display loop that refreshes every interval.
// It blocks until the context is cancelled.
func Run(ctx context.Context, w io.Writer, src Source, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}

	draw := func(now time.Time) {
		list, err := src.List(ctx)
		if err != nil {
			log.Printf("ERROR: load cities: %v", err)
			return
		}
		Render(w, list, now)
	}

	draw(time.Now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprint(w, clearScreen+cursorHome)
			fmt.Fprintln(w, "Goodbye!")
			return
		case t := <-ticker.C:
			draw(t)
		}
	}
}
