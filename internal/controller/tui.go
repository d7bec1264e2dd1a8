package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "linterman.dev/pkg/linterman/internal/model"
)

// issueItem adapts an Issue to the bubbles list item interface.
type issueItem struct {
	issue m.Issue
}

func (i issueItem) Title() string {
	return fmt.Sprintf("%s  %s", styledSeverity(i.issue.Severity), i.issue.RuleID)
}

func (i issueItem) Description() string {
	return fmt.Sprintf("%s  %s", i.issue.Path, i.issue.Message)
}

func (i issueItem) FilterValue() string {
	return i.issue.RuleID + " " + i.issue.Message
}

var browserTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// browserModel drives the interactive issue list.
type browserModel struct {
	list list.Model
}

func newBrowserModel(result m.Result) browserModel {
	items := make([]list.Item, 0, len(result.Issues))
	for _, issue := range result.Issues {
		items = append(items, issueItem{issue: issue})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = browserTitleStyle.Render(fmt.Sprintf("Lint issues - score %d/100", result.Score))
	l.SetShowStatusBar(true)

	return browserModel{list: l}
}

func (b browserModel) Init() tea.Cmd {
	return nil
}

func (b browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return b, tea.Quit
		}
	case tea.WindowSizeMsg:
		b.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)

	return b, cmd
}

func (b browserModel) View() string {
	return b.list.View()
}

// RunIssueBrowser opens the interactive issue browser over the report.
func RunIssueBrowser(result m.Result, output io.Writer) error {
	program := tea.NewProgram(newBrowserModel(result), tea.WithOutput(output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
