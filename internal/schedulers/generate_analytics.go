package schedulers

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"schedsim/internal/core"
)

// GenerateAnalytics derives per-process and aggregate timing figures
// from a finished timeline. It is a pure function: one pass over the
// timeline per process, no retained state.
//
// A process with no timeline segments (which a correct engine never
// produces for valid input) gets zeroed figures rather than an error.
func GenerateAnalytics(processes []core.Process, timeline []core.Segment) core.SimulationResult {
	metrics := make([]core.ProcessMetrics, 0, len(processes))
	for _, p := range processes {
		metrics = append(metrics, deriveProcessMetrics(p, timeline))
	}
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].ID < metrics[j].ID
	})

	totalTime := 0
	if len(timeline) > 0 {
		totalTime = timeline[len(timeline)-1].End
	}
	busyTime := 0
	for _, s := range timeline {
		if !s.Idle() {
			busyTime += s.Duration()
		}
	}

	result := core.SimulationResult{
		Timeline:  timeline,
		Metrics:   metrics,
		TotalTime: totalTime,
	}
	if len(metrics) > 0 {
		waiting := make([]float64, len(metrics))
		turnaround := make([]float64, len(metrics))
		response := make([]float64, len(metrics))
		for i, m := range metrics {
			waiting[i] = float64(m.WaitingTime)
			turnaround[i] = float64(m.TurnAroundTime)
			response[i] = float64(m.ResponseTime)
		}
		result.AverageWaitingTime = stat.Mean(waiting, nil)
		result.AverageTurnAroundTime = stat.Mean(turnaround, nil)
		result.AverageResponseTime = stat.Mean(response, nil)
	}
	if totalTime > 0 {
		result.CpuUtilization = 100 * float64(busyTime) / float64(totalTime)
		result.CpuThroughput = float64(len(processes)) / float64(totalTime)
	}
	return result
}

func deriveProcessMetrics(p core.Process, timeline []core.Segment) core.ProcessMetrics {
	firstStart := 0
	completion := 0
	seen := false
	for _, s := range timeline {
		if s.ProcessID != p.ID {
			continue
		}
		if !seen || s.Start < firstStart {
			firstStart = s.Start
		}
		if s.End > completion {
			completion = s.End
		}
		seen = true
	}

	turnaround := max(0, completion-p.ArrivalTime)
	waiting := max(0, turnaround-p.BurstTime)
	response := 0
	if seen {
		response = max(0, firstStart-p.ArrivalTime)
	}

	return core.ProcessMetrics{
		ID:             p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		CompletionTime: completion,
		TurnAroundTime: turnaround,
		WaitingTime:    waiting,
		ResponseTime:   response,
	}
}
