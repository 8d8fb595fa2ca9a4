package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/moggisen/World-Clock/internal/cities"
	"github.com/moggisen/World-Clock/internal/store"
	"github.com/moggisen/World-Clock/internal/ui"
	"github.com/moggisen/World-Clock/internal/wallclock"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var addTimezone string

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "Manage saved cities",
}

var citiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show saved cities with their current time",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		st, reg, err := openRegistry(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		list, err := reg.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println(ui.Dimf("No cities saved. Add one with: worldclock cities add <name> --tz <zone>"))
			return nil
		}
		writeCityTable(os.Stdout, list, time.Now())
		return nil
	},
}

var citiesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Save a city",
	Long: `Saves a city under the given name. Without --tz the name must be a known
city, whose timezone is used.

Examples:
  worldclock cities add Tokyo
  worldclock cities add "Home" --tz Europe/Stockholm`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		tz := addTimezone
		if tz == "" {
			var ok bool
			if tz, ok = cities.Lookup(name); !ok {
				return fmt.Errorf("unknown city %q: pass --tz with an IANA timezone such as Asia/Bangkok", name)
			}
		}

		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		st, reg, err := openRegistry(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		c, err := reg.Add(cmd.Context(), name, tz)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s (%s) %s\n", ui.Greenf("Added"), c.Name, c.Timezone, ui.Dimf("id %s", c.ID))
		return nil
	},
}

var citiesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a saved city",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		st, reg, err := openRegistry(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := reg.Remove(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", ui.Greenf("Removed"), args[0])
		return nil
	},
}

var citiesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved city",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		st, reg, err := openRegistry(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Delete(cmd.Context(), reg.Key()); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Println(ui.Dimf("No cities saved."))
				return nil
			}
			return err
		}
		fmt.Println(ui.Greenf("Cleared saved cities"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)
	citiesCmd.AddCommand(citiesListCmd, citiesAddCmd, citiesRemoveCmd, citiesClearCmd)
	citiesAddCmd.Flags().StringVar(&addTimezone, "tz", "", "IANA timezone (default: looked up from the city name)")
}

func writeCityTable(w io.Writer, list []cities.City, now time.Time) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Timezone", "Time", "Offset"})
	table.SetBorder(false)
	table.SetColumnSeparator("  ")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	for _, c := range list {
		t := wallclock.Resolve(now, c.Timezone)
		table.Append([]string{
			c.ID,
			c.Name,
			c.Timezone,
			wallclock.FormatDigital(t),
			wallclock.UTCOffset(now, c.Timezone),
		})
	}
	table.Render()
}
