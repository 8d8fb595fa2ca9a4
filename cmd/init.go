package cmd

import (
	"fmt"
	"os"

	"github.com/moggisen/World-Clock/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize worldclock configuration",
	Long:  `Creates the configuration directory and default config file at ~/.worldclock/config.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		// Existing files are rewritten so new keys pick up their defaults
		if _, err := os.Stat(path); err == nil {
			cfg, loadErr := config.Load(path)
			if loadErr != nil {
				return fmt.Errorf("load existing config: %w", loadErr)
			}
			if err := config.SaveWithComments(path, cfg); err != nil {
				return fmt.Errorf("update config: %w", err)
			}
			fmt.Printf("Configuration updated at %s (merged new defaults)\n", path)
			return nil
		}

		cfg := config.DefaultConfig()
		cfg.SeedDefaults = true
		if err := config.SaveWithComments(path, &cfg); err != nil {
			return fmt.Errorf("create config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", path)
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Println("  1. Add a city:")
		fmt.Println("     worldclock cities add Bangkok --tz Asia/Bangkok")
		fmt.Println()
		fmt.Println("  2. Watch your clocks in the terminal:")
		fmt.Println("     worldclock watch")
		fmt.Println()
		fmt.Printf("  3. Or open the dashboard: worldclock serve, then http://localhost:%d\n", cfg.Port)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
