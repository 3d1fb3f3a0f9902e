package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hourlog/internal/cli/formatter"
	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/progress"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const dashboardReportRows = 8

type dashboardKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Today   key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this month")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Refresh, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// dashboardLoadedMsg carries one evaluation of the month at cursor.
type dashboardLoadedMsg struct {
	cursor  time.Time
	summary *progress.Summary
	info    domain.PersonalInfo
	reports []*domain.Report
	err     error
}

// dashboardModel is the month view. Every cursor move reloads and
// re-evaluates the month.
type dashboardModel struct {
	app    *App
	keys   dashboardKeyMap
	help   help.Model
	cursor time.Time

	loading bool
	loaded  *dashboardLoadedMsg
	err     error
}

func newDashboardModel(app *App) *dashboardModel {
	return &dashboardModel{
		app:     app,
		keys:    newDashboardKeyMap(),
		help:    help.New(),
		cursor:  progress.StartOfMonth(app.now()),
		loading: true,
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.load()
}

func (m *dashboardModel) load() tea.Cmd {
	app, cursor := m.app, m.cursor
	return func() tea.Msg {
		ctx := context.Background()
		msg := dashboardLoadedMsg{cursor: cursor}
		msg.summary, msg.err = app.Progress.MonthSummary(ctx, cursor, app.now())
		if msg.err != nil {
			return msg
		}
		if msg.info, msg.err = app.Settings.PersonalInfo(ctx); msg.err != nil {
			return msg
		}
		msg.reports, msg.err = app.Reports.ListMonth(ctx, cursor)
		return msg
	}
}

func (m *dashboardModel) moveTo(t time.Time) tea.Cmd {
	m.cursor = progress.StartOfMonth(t)
	m.loading = true
	return m.load()
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case dashboardLoadedMsg:
		if !msg.cursor.Equal(m.cursor) {
			// A newer move is in flight.
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.loaded = &msg
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			return m, m.moveTo(progress.ShiftMonth(m.cursor, -1))
		case key.Matches(msg, m.keys.Next):
			return m, m.moveTo(progress.ShiftMonth(m.cursor, 1))
		case key.Matches(msg, m.keys.Today):
			return m, m.moveTo(m.app.now())
		case key.Matches(msg, m.keys.Refresh):
			return m, m.moveTo(m.cursor)
		}
	}
	return m, nil
}

func (m *dashboardModel) View() string {
	var b strings.Builder

	nav := fmt.Sprintf("‹ %s ›", formatter.MonthTitle(m.cursor))
	if progress.SameMonth(m.cursor, m.app.now()) {
		nav += formatter.Dim("  (this month)")
	}
	if m.loading {
		nav += formatter.Dim("  …")
	}
	b.WriteString(formatter.StyleHeader.Render("HOURLOG") + "  " + formatter.Bold(nav) + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.loaded == nil:
		b.WriteString(formatter.Dim("Loading…") + "\n")
	default:
		b.WriteString(formatter.FormatMonthSummary(m.loaded.info, *m.loaded.summary))
		b.WriteString("\n\n")
		reports := m.loaded.reports
		if len(reports) > dashboardReportRows {
			reports = reports[:dashboardReportRows]
		}
		b.WriteString(formatter.FormatReports(reports, m.app.now()))
		if extra := len(m.loaded.reports) - len(reports); extra > 0 {
			b.WriteString(formatter.Dim(fmt.Sprintf("… and %d more\n", extra)))
		}
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Browse months interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}
}

func runDashboard(cmd *cobra.Command, app *App) error {
	p := tea.NewProgram(newDashboardModel(app),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}
