package cmd

import (
	"fmt"
	"os"

	"github.com/simpletv/luasync/pkg/app/styles"
	"github.com/simpletv/luasync/pkg/config"
	"github.com/simpletv/luasync/pkg/manifest"
	"github.com/simpletv/luasync/pkg/services"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Update every enabled script",
	Long:  "Fetch the latest version of each enabled manifest entry and install it into the SimpleTV folders",
	Run: func(cmd *cobra.Command, args []string) {
		runSync()
	},
}

func runSync() {
	cfg := loadConfig()

	created, err := ensureManifest(cfg)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("failed to create manifest: %w", err))
	}
	if created {
		fmt.Printf("📝 Created manifest template: %s\n", cfg.ManifestPath())
	}

	sync := services.NewSynchronizer(cfg, consoleListener())
	report := sync.Run()
	fmt.Println(styles.MutedStyle.Render("Run ID: " + report.RunID))
}

// ensureManifest writes the default template when no manifest exists
// yet, so a fresh installation syncs the full script set.
func ensureManifest(cfg *config.Config) (bool, error) {
	if _, err := os.Stat(cfg.ManifestPath()); err == nil {
		return false, nil
	}
	if err := manifest.WriteTemplate(cfg.ManifestPath()); err != nil {
		return false, err
	}
	return true, nil
}

// consoleListener renders sync events as styled lines, info lines
// inside the run prefixed with a [i/N] counter.
func consoleListener() services.Callbacks {
	current, total := 0, 0
	return services.Callbacks{
		OnProgress: func(i, n int) {
			current, total = i, n
		},
		OnLog: func(message string, severity services.Severity) {
			if severity == services.SeverityInfo && total > 0 && current < total {
				fmt.Printf("[%d/%d] %s\n", current+1, total, renderLogLine(message, severity))
			} else {
				fmt.Println(renderLogLine(message, severity))
			}
		},
	}
}

func renderLogLine(message string, severity services.Severity) string {
	switch severity {
	case services.SeveritySuccess:
		return styles.LogSuccess.Render("✅ " + message)
	case services.SeverityWarning:
		return styles.LogWarning.Render("⚠️  " + message)
	case services.SeverityError:
		return styles.LogError.Render("❌ " + message)
	case services.SeverityHeader:
		return "\n" + styles.LogHeader.Render(message)
	default:
		return styles.LogInfo.Render(message)
	}
}
