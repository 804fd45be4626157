// Package observability provides human-readable output for the interactive shell.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/placement-portal/internal/portal"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxViewLines caps how much of a rendered view is shown
	maxViewLines = 12
)

// Printer handles formatted output for pretty mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(line string) string {
	runes := []rune(line)
	if len(runes) > boxWidth-4 {
		return string(runes[:boxWidth-7]) + "..."
	}
	return line
}

// Print writes one portal output. Screens and sections get a box; everything else is one line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Print(o portal.Output) {
	switch o.Kind {
	case portal.KindLoginScreen:
		p.printBox("LOGIN", "Choose a role and sign in.")
	case portal.KindMainApp:
		p.printMainApp(o)
	case portal.KindRender:
		p.printBox(strings.ToUpper(string(o.Section)), summarizeView(o.View))
	case portal.KindActiveMenu:
		fmt.Fprintf(p.out, "» %s\n", o.Section)
	case portal.KindMessage:
		fmt.Fprintf(p.out, "[%s] %s: %s\n", o.Severity, o.Title, o.Body)
	case portal.KindChat:
		fmt.Fprintf(p.out, "(%s) %s: %s\n", o.Surface, o.Sender, o.Text)
	case portal.KindDialog:
		fmt.Fprintf(p.out, "dialog opened: %s\n", o.Dialog)
	default:
		fmt.Fprintf(p.out, "%s\n", o.Kind)
	}
}

func (p *Printer) printMainApp(o portal.Output) {
	var sb strings.Builder
	title := "PORTAL"
	if o.User != nil {
		title = fmt.Sprintf("SIGNED IN: %s", o.User.DisplayName)
		sb.WriteString(fmt.Sprintf("Role:  %s\n", o.User.Role))
		sb.WriteString(fmt.Sprintf("Email: %s\n", o.User.Email))
	}
	if len(o.Menu) > 0 {
		sb.WriteString("\nMenu:\n")
		for _, item := range o.Menu {
			marker := " "
			if item.Active {
				marker = "*"
			}
			sb.WriteString(fmt.Sprintf(" %s %s %s\n", marker, item.Icon, item.Label))
		}
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// summarizeView renders a view as indented JSON cut to maxViewLines.
func summarizeView(view any) string {
	if view == nil {
		return "(empty)"
	}
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Sprintf("unprintable view: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) > maxViewLines {
		more := len(lines) - maxViewLines
		lines = append(lines[:maxViewLines], fmt.Sprintf("... and %d more lines", more))
	}
	return strings.Join(lines, "\n")
}
