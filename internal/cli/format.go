package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/danieljhkim/pushswap/internal/replay"
	"github.com/danieljhkim/pushswap/internal/stack"
)

var (
	// fatih/color disables these when stdout is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
)

// printWarning prints a warning message with a warning symbol
func printWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

// printLabelValue prints a label-value pair with proper formatting
func printLabelValue(w io.Writer, label, value string) {
	_, _ = labelColor.Fprintf(w, "  %s: ", label)
	_, _ = valueColor.Fprintln(w, value)
}

// printVerdict prints OK in green or KO in red, alone on its line.
func printVerdict(w io.Writer, v replay.Verdict) {
	clr := successColor
	if v != replay.OK {
		clr = errorColor
	}
	_, _ = clr.Fprintln(w, string(v))
}

// renderStacks draws A and B side by side, tops on the first row.
func renderStacks(w io.Writer, m *stack.Machine) {
	a, b := m.A(), m.B()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"A", "B"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	rows := max(a.Len(), b.Len())
	for i := 0; i < rows; i++ {
		table.Append([]string{cell(a, i), cell(b, i)})
	}
	table.Render()
}

func cell(s *stack.Stack, i int) string {
	if i >= s.Len() {
		return ""
	}
	return strconv.Itoa(s.At(i))
}

// countLabel prints a count with its singular or plural noun.
func countLabel(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
