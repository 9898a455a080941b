package commands

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"evalvault/pkg/core"
)

var (
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	sevStyles = map[core.Severity]lipgloss.Style{
		core.SeverityS0: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		core.SeverityS1: lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
		core.SeverityS2: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		core.SeverityS3: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
)

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderOutcome(w io.Writer, outcome core.Outcome) string {
	if !isTerminal(w) {
		return string(outcome)
	}
	if outcome == core.OutcomePass {
		return passStyle.Render(string(outcome))
	}
	return failStyle.Render(string(outcome))
}

// renderInvalid marks a record rejected by validation, as opposed to an
// evaluated FAIL outcome.
func renderInvalid(w io.Writer) string {
	if !isTerminal(w) {
		return "INVALID"
	}
	return invalidStyle.Render("INVALID")
}

func renderSeverity(w io.Writer, sev core.Severity) string {
	style, ok := sevStyles[sev]
	if !ok || !isTerminal(w) {
		return string(sev)
	}
	return style.Render(string(sev))
}
