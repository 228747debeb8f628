package components

import (
	"fmt"
	"strings"

	"github.com/simpletv/luasync/pkg/app/styles"
	"github.com/simpletv/luasync/pkg/services"
)

// visibleLogLines caps how much of the log tail the view shows.
const visibleLogLines = 10

type logLine struct {
	message  string
	severity services.Severity
}

// SyncTracker accumulates the events of one sync run for rendering.
type SyncTracker struct {
	current int
	total   int
	logs    []logLine
	width   int

	done   bool
	report services.Report
}

func NewSyncTracker(width int) *SyncTracker {
	return &SyncTracker{width: width}
}

func (t *SyncTracker) SetWidth(width int) {
	t.width = width
}

func (t *SyncTracker) SetProgress(current, total int) {
	t.current = current
	t.total = total
}

func (t *SyncTracker) AddLog(message string, severity services.Severity) {
	t.logs = append(t.logs, logLine{message: message, severity: severity})
}

// Finish records the final report rendered as the summary card.
func (t *SyncTracker) Finish(report services.Report) {
	t.done = true
	t.report = report
}

func (t *SyncTracker) Done() bool {
	return t.done
}

func (t *SyncTracker) View() string {
	var b strings.Builder

	if t.total > 0 {
		counter := fmt.Sprintf(" %d/%d", t.current, t.total)
		barWidth := t.width - len(counter) - 2
		if barWidth < 10 {
			barWidth = 10
		}
		b.WriteString(renderProgressBar(t.current, t.total, barWidth))
		b.WriteString(styles.TextStyle.Render(counter))
		b.WriteString("\n\n")
	}

	start := 0
	if len(t.logs) > visibleLogLines {
		start = len(t.logs) - visibleLogLines
	}
	for _, line := range t.logs[start:] {
		b.WriteString(styles.SeverityStyle(string(line.severity)).Render(line.message))
		b.WriteString("\n")
	}

	if t.done {
		b.WriteString("\n")
		b.WriteString(t.summary())
	}

	return b.String()
}

func (t *SyncTracker) summary() string {
	var b strings.Builder
	b.WriteString(styles.LogSuccess.Render(fmt.Sprintf("Updated: %d", len(t.report.Succeeded))))
	if len(t.report.Failed) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.LogError.Render(fmt.Sprintf("Failed: %d", len(t.report.Failed))))
		for _, name := range t.report.Failed {
			b.WriteString("\n")
			b.WriteString(styles.LogError.Render("  - " + name))
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("Run ID: " + t.report.RunID))
	return styles.CardStyle.Render(b.String())
}

func renderProgressBar(current, total, width int) string {
	if total == 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
	return bar
}
