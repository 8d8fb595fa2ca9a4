package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/moggisen/World-Clock/internal/cities"
	"github.com/moggisen/World-Clock/internal/config"
	"github.com/moggisen/World-Clock/internal/store"
	"github.com/moggisen/World-Clock/internal/ui"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "worldclock",
	Short: "World clock for your saved cities",
	Long: `worldclock keeps a list of cities and shows the current wall-clock
time in each of them, in the terminal or in the browser.

Usage:
  worldclock init              Initialize configuration
  worldclock serve             Start the web dashboard
  worldclock watch             Live clocks in the terminal
  worldclock cities list       Show saved cities
  worldclock cities add        Save a city
  worldclock svg <id>          Render an analog clock face
  worldclock status            Show storage details`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Redf("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.worldclock/config.yaml)")
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	path, err := config.DefaultConfigPath()
	if err != nil {
		return "", fmt.Errorf("determine config path: %w", err)
	}
	return path, nil
}

func loadConfig() (*config.Config, string, error) {
	path, err := configPath()
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("config not found at %s (run 'worldclock init' first)", path)
		}
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, path, nil
}

// openRegistry opens the configured database and the city registry on top of it.
// The caller closes the returned store.
func openRegistry(cfg *config.Config) (*store.Store, *cities.Registry, error) {
	st, err := store.New(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	logf(cfg, "STORE: opened %s database", st.Dialect())
	return st, cities.NewRegistry(st, cfg.StorageKey), nil
}

// logf logs only when log_level is debug.
func logf(cfg *config.Config, format string, args ...any) {
	if strings.EqualFold(cfg.LogLevel, "debug") {
		log.Printf("DEBUG: "+format, args...)
	}
}
