// worldclock shows the current time in saved cities around the world,
// in the terminal or in a browser dashboard.
//
// Usage:
//
//	worldclock init                 # Write ~/.worldclock/config.yaml
//	worldclock watch                # Live clocks for saved cities
//	worldclock watch london tokyo   # Live clocks for named cities
//	worldclock serve                # Web dashboard on :8080
package main

import (
	_ "time/tzdata"

	"github.com/moggisen/World-Clock/cmd"
)

func main() {
	cmd.Execute()
}
