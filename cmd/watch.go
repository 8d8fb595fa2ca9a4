package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/moggisen/World-Clock/internal/cities"
	"github.com/moggisen/World-Clock/internal/display"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [city...]",
	Short: "Live clocks in the terminal",
	Long: `Redraws the digital clock of every saved city once per tick.

Naming cities on the command line shows those instead of the saved list:
  worldclock watch london tokyo
  worldclock watch "new york" paris`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if len(args) > 0 {
			list, err := cities.ParseCities(args)
			if err != nil {
				return err
			}
			display.Run(ctx, os.Stdout, display.Static(list), cfg.Tick())
			return nil
		}

		st, reg, err := openRegistry(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		display.Run(ctx, os.Stdout, reg, cfg.Tick())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

var _ display.Source = (*cities.Registry)(nil)
