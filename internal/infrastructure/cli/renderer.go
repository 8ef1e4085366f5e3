package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/doeshing/aish-go/internal/domain"
)

// RenderResponse prints the command, and nothing else, to out.
func RenderResponse(out io.Writer, resp domain.QueryResponse) {
	fmt.Fprintln(out, resp.Command)
}

// PrintError writes "Error: <message>" to w, the prefix in red on a terminal.
func PrintError(w io.Writer, err error) {
	c := colorFor(w, color.FgRed, color.Bold)
	c.Fprint(w, "Error:")
	fmt.Fprintf(w, " %v\n", err)
}

func renderDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		c := colorFor(out, statusColor(check.Status))
		c.Fprintf(out, "[%s]", strings.ToUpper(string(check.Status)))
		fmt.Fprintf(out, " %s - %s\n", check.Name, check.Details)
	}
}

func statusColor(status domain.HealthStatus) color.Attribute {
	switch status {
	case domain.HealthOK:
		return color.FgGreen
	case domain.HealthWarn:
		return color.FgYellow
	default:
		return color.FgRed
	}
}

// colorFor returns a color that is only applied when w is a terminal.
func colorFor(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
