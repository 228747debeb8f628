package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simpletv/luasync/pkg/app/styles"
	"github.com/simpletv/luasync/pkg/manifest"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the manifest entries",
	Long:  "Display every manifest entry and whether it is enabled for synchronization",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		lines, err := manifest.Read(cfg.ManifestPath())
		if errors.Is(err, manifest.ErrNotFound) {
			fmt.Printf("📄 No manifest at %s. Use 'luasync init' to create one.\n", cfg.ManifestPath())
			return
		}
		if err != nil {
			cobra.CheckErr(err)
		}

		enabled := 0
		for _, line := range lines {
			if manifest.IsDisabled(line) {
				name := strings.TrimPrefix(line, manifest.DisableMarker)
				fmt.Println(styles.MutedStyle.Render("  ○ " + name + " (disabled)"))
			} else {
				enabled++
				fmt.Println(styles.TextStyle.Render("  ● " + line))
			}
		}

		fmt.Printf("\n%d of %d entries enabled\n", enabled, len(lines))
	},
}
