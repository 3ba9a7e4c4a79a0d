// Package report renders schedules for people (a boxed table) and for
// machines (JSON or YAML).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/me/flightsched/pkg/model"
	"gopkg.in/yaml.v3"
)

// Format selects the output representation.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat resolves a user-supplied format name. Empty selects FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want table, json or yaml)", s)
}

// Render writes view to w in the given format.
func Render(w io.Writer, f Format, view model.ScheduleView) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, "":
		return Table(w, view)
	}
	return fmt.Errorf("unknown format %q", f)
}

var (
	headers = []string{"Flight", "Departure", "Destination", "Arrival", "Duration", "Start", "Complete", "TAT", "Wait"}
	widths  = []int{6, 18, 18, 8, 10, 8, 10, 10, 10}
)

// Table writes the boxed schedule table followed by the averages and the
// execution order. Rows appear in view.Records order.
func Table(w io.Writer, view model.ScheduleView) error {
	sep := separator()
	var b strings.Builder

	b.WriteString("\n" + sep + "\n")
	b.WriteString(row(headers, center) + "\n")
	b.WriteString(sep + "\n")
	for _, r := range view.Records {
		b.WriteString(row([]string{
			r.ID,
			r.Origin,
			r.Destination,
			model.FormatClock(r.ArrivalMinutes),
			model.FormatClock(r.DurationMinutes),
			model.FormatClock(r.StartMinutes),
			model.FormatClock(r.CompletionMinutes),
			model.FormatClock(r.TurnaroundMinutes),
			model.FormatClock(r.WaitingMinutes),
		}, left) + "\n")
	}
	b.WriteString(sep + "\n")

	// Means are truncated to whole minutes for display.
	fmt.Fprintf(&b, "\nAverage Turnaround Time: %s\n", model.FormatClock(int(view.Summary.MeanTurnaround)))
	fmt.Fprintf(&b, "Average Waiting Time: %s\n", model.FormatClock(int(view.Summary.MeanWaiting)))
	rule := strings.Repeat("-", 50)
	b.WriteString(rule + "\n")
	b.WriteString("Execution Order: " + strings.Join(view.Order, " → ") + "\n")
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func separator() string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return strings.Join(parts, "+")
}

func row(cells []string, align func(string, int) string) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = align(c, widths[i])
	}
	return "| " + strings.Join(out, " | ") + " |"
}

// left pads s on the right to width. Longer values are not truncated.
func left(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// center pads s on both sides, the odd space going to the right.
func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	l := pad / 2
	return strings.Repeat(" ", l) + s + strings.Repeat(" ", pad-l)
}
