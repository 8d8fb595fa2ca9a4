package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moggisen/World-Clock/internal/dashboard"
	"github.com/moggisen/World-Clock/internal/ui"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Serves the browser world clock: the city list with digital clocks,
an analog detail view per city, the JSON API and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Port = servePort
		}

		st, reg, err := openRegistry(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if cfg.SeedDefaults {
			n, err := reg.Seed(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed cities: %w", err)
			}
			if n > 0 {
				logf(cfg, "CITIES: seeded %d common cities", n)
			}
		}

		srv := dashboard.NewServer(cfg.Port, dashboard.New(cfg, reg))

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			fmt.Println()
			fmt.Println(ui.Dimf("Shutting down dashboard..."))
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()

		fmt.Println()
		fmt.Println(ui.Boldf("  worldclock") + ui.Dimf(" - world clock dashboard"))
		fmt.Println()
		fmt.Printf("  %s  %s\n", ui.Dimf("Listening:"), ui.Greenf("http://localhost%s", srv.Addr()))
		fmt.Printf("  %s  %s (%s)\n", ui.Dimf("Database: "), cfg.Database, st.Dialect())
		fmt.Printf("  %s  %s\n", ui.Dimf("Metrics:  "), ui.Cyanf("http://localhost%s/metrics", srv.Addr()))
		fmt.Println()
		fmt.Println(ui.Dimf("  Press Ctrl+C to stop"))
		fmt.Println()

		return srv.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
}
