package cmd

import (
	"os"

	"github.com/simpletv/luasync/pkg/config"
	"github.com/spf13/cobra"
)

var flagRoot string

var rootCmd = &cobra.Command{
	Use:   "luasync",
	Short: "Keep SimpleTV Lua scripts up to date",
	Long:  "Synchronize SimpleTV video scripts, scrapers and timeshift extensions with their upstream repositories",
	Run: func(cmd *cobra.Command, args []string) {
		// Sync by default
		runSync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagRoot, "root", "r", ".", "SimpleTV installation root")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load(flagRoot)
	cobra.CheckErr(err)
	return cfg
}
