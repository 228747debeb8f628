package cmd

import (
	"fmt"

	"github.com/simpletv/luasync/pkg/app"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the sync in a full-screen interface",
	Long:  "Synchronize with a live progress bar and log view instead of plain console output",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		if _, err := ensureManifest(cfg); err != nil {
			cobra.CheckErr(fmt.Errorf("failed to create manifest: %w", err))
		}

		a := app.NewApp(cfg)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}
