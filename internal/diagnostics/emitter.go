package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/droe-lang/droe-sub001/internal/source"
)

var severityStyles = map[Severity]lipgloss.Style{
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

var (
	locationStyle = lipgloss.NewStyle().Bold(true)
	summaryStyle  = lipgloss.NewStyle().Faint(true)
)

// Lint writes machine-parsable findings, one
// "file:line:col: severity: message" per line, then a count summary.
func Lint(w io.Writer, file string, diags []*Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", file, d.Line, d.Character, d.Severity, d.Message)
	}
	if len(diags) > 0 {
		fmt.Fprintln(w, Summary(diags))
	}
}

// Pretty writes severity-colored findings with a source line excerpt
// and caret. src may be empty, in which case excerpts are skipped.
func Pretty(w io.Writer, file, src string, diags []*Diagnostic) {
	for _, d := range diags {
		loc := locationStyle.Render(fmt.Sprintf("%s:%d:%d", file, d.Line, d.Character))
		head := severityStyles[d.Severity].Render(d.Severity.String())
		fmt.Fprintf(w, "%s: %s: %s\n", loc, head, d.Message)
		if src == "" {
			continue
		}
		line, ok := source.LineAt(src, d.Line)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s\n", line)
		if d.Character > 0 && d.Character <= len(line)+1 {
			caret := severityStyles[d.Severity].Render("^")
			fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", d.Character-1), caret)
		}
	}
	if len(diags) > 0 {
		fmt.Fprintln(w, summaryStyle.Render(Summary(diags)))
	}
}

// Summary renders the closing count line, e.g.
// "3 problems (2 errors, 1 warning)".
func Summary(diags []*Diagnostic) string {
	errs, warns := 0, 0
	for _, d := range diags {
		switch d.Severity {
		case Error:
			errs++
		case Warning:
			warns++
		}
	}
	problems := "problems"
	if len(diags) == 1 {
		problems = "problem"
	}
	return fmt.Sprintf("%d %s (%s, %s)",
		len(diags), problems, plural(errs, "error"), plural(warns, "warning"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
