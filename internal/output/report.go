package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/craftfile/cli/pkg/containerfile"
)

// Color palette for validation reports.
var (
	// ColorCyan styles field access paths.
	ColorCyan = lipgloss.Color("14")

	// ColorRed styles the failure headline.
	ColorRed = lipgloss.Color("196")
)

// Styles for the parts of an error report.
var (
	// StyleField styles the field access path of an error.
	StyleField = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHeadline styles the report headline.
	StyleHeadline = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	// StyleValue styles the rejected input value.
	StyleValue = lipgloss.NewStyle().Faint(true)
)

// WriteErrorReport writes every validation error to w, one per line,
// with the field path, message and rejected value. The error count in
// the headline lets a caller see at a glance how much is wrong; the
// list is exhaustive because the pipeline accumulates rather than
// failing fast.
func WriteErrorReport(w io.Writer, errs containerfile.Errors) {
	noun := "errors"
	if len(errs) == 1 {
		noun = "error"
	}
	fmt.Fprintln(w, StyleHeadline.Render(fmt.Sprintf("%d validation %s:", len(errs), noun)))

	for _, e := range errs {
		var sb strings.Builder
		sb.WriteString("  ")
		if e.Field != "" {
			sb.WriteString(StyleField.Render(e.Field))
			sb.WriteString(": ")
		}
		sb.WriteString(e.Message)
		if s, isString := e.Value.(string); isString && s != "" {
			sb.WriteString(" ")
			sb.WriteString(StyleValue.Render(fmt.Sprintf("(got %q)", s)))
		}
		fmt.Fprintln(w, sb.String())
	}
}
