package cmd

import (
	"fmt"
	"os"

	"github.com/simpletv/luasync/pkg/manifest"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a fresh manifest template",
	Long:  "Create the manifest in the installation root with every known script enabled",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		path := cfg.ManifestPath()

		if _, err := os.Stat(path); err == nil && !initForce {
			cobra.CheckErr(fmt.Errorf("%s already exists, use --force to overwrite", path))
		}

		if err := manifest.WriteTemplate(path); err != nil {
			cobra.CheckErr(fmt.Errorf("failed to write manifest: %w", err))
		}

		fmt.Printf("✅ Manifest written: %s (%d entries)\n", path, len(manifest.DefaultEntries))
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing manifest")
}
