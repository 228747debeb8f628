package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/simpletv/luasync/pkg/app/components"
	"github.com/simpletv/luasync/pkg/app/styles"
	"github.com/simpletv/luasync/pkg/config"
	"github.com/simpletv/luasync/pkg/services"
)

// SyncScreen runs one synchronization and renders its progress live.
type SyncScreen struct {
	cfg     *config.Config
	events  chan tea.Msg
	tracker *components.SyncTracker

	width  int
	height int
}

func NewSyncScreen(cfg *config.Config) *SyncScreen {
	return &SyncScreen{
		cfg:     cfg,
		events:  make(chan tea.Msg, 64),
		tracker: components.NewSyncTracker(80),
	}
}

func (s *SyncScreen) Init() tea.Cmd {
	return tea.Batch(s.startSync, s.nextEvent)
}

func (s *SyncScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.tracker.SetWidth(msg.Width - 4)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return s, tea.Quit
		}
		if s.tracker.Done() {
			return s, tea.Quit
		}

	case progressMsg:
		s.tracker.SetProgress(msg.current, msg.total)
		return s, s.nextEvent

	case logMsg:
		s.tracker.AddLog(msg.message, msg.severity)
		return s, s.nextEvent

	case syncDoneMsg:
		s.tracker.Finish(msg.report)
	}

	return s, nil
}

func (s *SyncScreen) View() string {
	header := styles.TitleStyle.Render("🔄 SimpleTV script sync")
	target := styles.SubtitleStyle.Render(fmt.Sprintf("Manifest: %s", s.cfg.ManifestPath()))

	help := styles.HelpStyle.Render("q: quit")
	if s.tracker.Done() {
		help = styles.HelpStyle.Render("press any key to exit")
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n%s", header, target, s.tracker.View(), help)
}

// Messages
type progressMsg struct {
	current int
	total   int
}

type logMsg struct {
	message  string
	severity services.Severity
}

type syncDoneMsg struct {
	report services.Report
}

// Commands

// startSync runs the synchronizer and forwards its events into the
// screen's channel, the report last. The final syncDoneMsg closes the
// receive loop, so nextEvent is not re-armed after it.
func (s *SyncScreen) startSync() tea.Msg {
	sync := services.NewSynchronizer(s.cfg, services.Callbacks{
		OnProgress: func(current, total int) {
			s.events <- progressMsg{current: current, total: total}
		},
		OnLog: func(message string, severity services.Severity) {
			s.events <- logMsg{message: message, severity: severity}
		},
	})
	s.events <- syncDoneMsg{report: sync.Run()}
	return nil
}

func (s *SyncScreen) nextEvent() tea.Msg {
	return <-s.events
}
