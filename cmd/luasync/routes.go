package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/simpletv/luasync/pkg/manifest"
	"github.com/simpletv/luasync/pkg/routes"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Show where each enabled entry is installed from",
	Long:  "Classify every enabled manifest entry and display its source and destination without downloading anything",
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

		entries := manifest.Active(lines)
		if len(entries) == 0 {
			fmt.Println("📄 Manifest has no enabled entries.")
			return
		}

		classifier := routes.NewClassifier(cfg)

		columns := []table.Column{
			{Title: "File", Width: 30},
			{Title: "Type", Width: 8},
			{Title: "Destination", Width: 46},
		}

		rows := []table.Row{}
		for _, name := range entries {
			route := classifier.Classify(name)

			dest := route.Dest
			switch route.Kind {
			case routes.KindArchive:
				dest = cfg.Root
			case routes.KindUnknown:
				dest = "-"
			}

			rows = append(rows, table.Row{
				truncateString(route.Name, 28),
				string(route.Kind),
				truncateString(dest, 44),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n🗺  Routes (%d enabled entries)\n\n", len(entries))
		fmt.Println(t.View())
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
