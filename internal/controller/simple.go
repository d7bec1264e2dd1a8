package controller

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"linterman.dev/pkg/linterman/internal/engine"
	m "linterman.dev/pkg/linterman/internal/model"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	scoreGoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	scoreWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	scoreBadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	format string
}

// NewSimpleUI creates a new SimpleUI emitting the given format.
func NewSimpleUI(cmd *cobra.Command, format string) *SimpleUI {
	return &SimpleUI{cmd: cmd, format: format}
}

// DisplayResult prints the lint report, as a table or as pretty JSON
// depending on the configured format.
func (s *SimpleUI) DisplayResult(result m.Result) error {
	if s.format == FormatJSON {
		return s.printJSON(result)
	}

	s.printf("\nScore: %s\n\n", styledScore(result.Score))

	if len(result.Issues) > 0 {
		s.printf("%s", renderIssueTable(result.Issues))
	}

	s.printf(
		"\n%d requests, %d folders, %d tests\n",
		result.Stats.TotalRequests, result.Stats.TotalFolders, result.Stats.TotalTests,
	)
	s.printf(
		"%s  %s  %s\n",
		errorStyle.Render(fmt.Sprintf("%d errors", result.Stats.Errors)),
		warningStyle.Render(fmt.Sprintf("%d warnings", result.Stats.Warnings)),
		infoStyle.Render(fmt.Sprintf("%d infos", result.Stats.Infos)),
	)

	return nil
}

// DisplayFixOutcome prints the before/after summary of a fix run.
func (s *SimpleUI) DisplayFixOutcome(outcome m.FixOutcome) error {
	if s.format == FormatJSON {
		return s.printJSON(outcome)
	}

	s.printf("\nFixes applied: %d\n", outcome.FixesApplied)
	s.printf(
		"Score: %s -> %s (%d issues -> %d issues)\n",
		styledScore(outcome.Before.Score), styledScore(outcome.After.Score),
		outcome.Before.Issues, outcome.After.Issues,
	)

	if len(outcome.RemainingIssues) > 0 {
		s.printf("\nRemaining issues:\n%s", renderIssueTable(outcome.RemainingIssues))
	}

	return nil
}

// DisplayRules lists the registered rules.
func (s *SimpleUI) DisplayRules(rules []engine.Rule) error {
	if s.format == FormatJSON {
		type ruleInfo struct {
			ID       string `json:"id"`
			Category string `json:"category"`
			Severity string `json:"severity"`
		}

		infos := make([]ruleInfo, 0, len(rules))
		for _, rule := range rules {
			infos = append(infos, ruleInfo{rule.ID, rule.Category, string(rule.Severity)})
		}

		return s.printJSON(infos)
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Rule", "Category", "Severity"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, rule := range rules {
		table.Append([]string{rule.ID, rule.Category, styledSeverity(rule.Severity)})
	}

	table.Render()
	s.printf("%s", buf.String())

	return nil
}

func renderIssueTable(issues []m.Issue) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Severity", "Rule", "Path", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, issue := range issues {
		table.Append([]string{
			styledSeverity(issue.Severity),
			issue.RuleID,
			issue.Path,
			issue.Message,
		})
	}

	table.Render()

	return buf.String()
}

func styledSeverity(severity m.Severity) string {
	switch severity {
	case m.SeverityError:
		return errorStyle.Render(string(severity))
	case m.SeverityWarning:
		return warningStyle.Render(string(severity))
	default:
		return infoStyle.Render(string(severity))
	}
}

func styledScore(score int) string {
	text := fmt.Sprintf("%d/100", score)

	switch {
	case score >= 80:
		return scoreGoodStyle.Render(text)
	case score >= 50:
		return scoreWarnStyle.Render(text)
	default:
		return scoreBadStyle.Render(text)
	}
}

func (s *SimpleUI) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	s.printf("%s\n", data)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
