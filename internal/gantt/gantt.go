// Package gantt renders a finished simulation as a terminal Gantt chart
// and a metrics table. It only reads the immutable result; nothing here
// feeds back into the engine.
package gantt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"schedsim/internal/core"
)

var (
	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Align(lipgloss.Center)

	segmentPalette = []lipgloss.Color{"12", "10", "11", "13", "14", "9"}

	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Chart draws the timeline as one bar of labelled cells with a time axis
// underneath. Cell widths scale with segment duration so the chart fits
// roughly within width columns.
func Chart(result core.SimulationResult, width int) string {
	if len(result.Timeline) == 0 {
		return "(empty timeline)\n"
	}

	unit := 1.0
	if result.TotalTime > 0 && width > 0 {
		unit = float64(width) / float64(result.TotalTime)
	}

	colors := assignColors(result.Timeline)

	var bar strings.Builder
	var axis strings.Builder
	bar.WriteString("|")
	axis.WriteString(fmt.Sprintf("%d", result.Timeline[0].Start))

	for _, s := range result.Timeline {
		cellWidth := int(float64(s.Duration()) * unit)
		if min := len(s.ProcessID) + 2; cellWidth < min {
			cellWidth = min
		}

		style := idleStyle
		if !s.Idle() {
			style = lipgloss.NewStyle().
				Foreground(colors[s.ProcessID]).
				Bold(true).
				Align(lipgloss.Center)
		}
		bar.WriteString(style.Width(cellWidth).Render(s.ProcessID))
		bar.WriteString("|")

		label := fmt.Sprintf("%d", s.End)
		pad := cellWidth + 1 - len(label)
		if pad < 1 {
			pad = 1
		}
		axis.WriteString(strings.Repeat(" ", pad))
		axis.WriteString(label)
	}

	return bar.String() + "\n" + axis.String() + "\n"
}

// MetricsTable lays out the per-process figures and the aggregate lines.
func MetricsTable(result core.SimulationResult) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %8s %6s %9s %11s %11s %8s %9s",
		"id", "arrival", "burst", "priority", "completion", "turnaround", "waiting", "response")))
	b.WriteString("\n")

	for _, m := range result.Metrics {
		b.WriteString(fmt.Sprintf("%-6s %8d %6d %9d %11d %11d %8d %9d\n",
			m.ID, m.ArrivalTime, m.BurstTime, m.Priority,
			m.CompletionTime, m.TurnAroundTime, m.WaitingTime, m.ResponseTime))
	}

	b.WriteString(fmt.Sprintf("\navg waiting    %.2f\n", result.AverageWaitingTime))
	b.WriteString(fmt.Sprintf("avg turnaround %.2f\n", result.AverageTurnAroundTime))
	b.WriteString(fmt.Sprintf("avg response   %.2f\n", result.AverageResponseTime))
	b.WriteString(fmt.Sprintf("utilization    %.1f%%\n", result.CpuUtilization))
	b.WriteString(fmt.Sprintf("throughput     %.3f proc/unit\n", result.CpuThroughput))
	return b.String()
}

// assignColors gives each distinct process a stable palette color in
// order of first appearance.
func assignColors(timeline []core.Segment) map[string]lipgloss.Color {
	colors := make(map[string]lipgloss.Color)
	next := 0
	for _, s := range timeline {
		if s.Idle() {
			continue
		}
		if _, ok := colors[s.ProcessID]; !ok {
			colors[s.ProcessID] = segmentPalette[next%len(segmentPalette)]
			next++
		}
	}
	return colors
}
