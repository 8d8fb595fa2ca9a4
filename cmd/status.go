package cmd

import (
	"fmt"
	"os"

	"github.com/moggisen/World-Clock/internal/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and storage details",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
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
		entries, err := st.Entries(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s\n", ui.Dimf("Config:  "), path)
		fmt.Printf("%s  %s (%s)\n", ui.Dimf("Database:"), cfg.Database, st.Dialect())
		fmt.Printf("%s  %d\n", ui.Dimf("Cities:  "), len(list))
		fmt.Println()

		if len(entries) == 0 {
			fmt.Println(ui.Dimf("Nothing stored yet."))
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Key", "Size", "Updated"})
		table.SetBorder(false)
		table.SetColumnSeparator("  ")
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		for _, e := range entries {
			table.Append([]string{e.Key, fmt.Sprintf("%d B", e.Size), e.UpdatedAt.Local().Format("2006-01-02 15:04:05")})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
