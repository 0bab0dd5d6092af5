package schedulers

import (
	"sort"
	"testing"

	"schedsim/internal/core"
)

func TestGenerateAnalyticsSingleProcess(t *testing.T) {
	processes := []core.Process{proc("P1", 2, 3, 0, 0)}
	timeline, err := Schedule(processes, core.PolicyFirstComeFirstServe, 0)
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}

	result := GenerateAnalytics(processes, timeline)

	if result.TotalTime != 5 {
		t.Errorf("TotalTime = %d, want 5", result.TotalTime)
	}
	if result.CpuUtilization != 60 {
		t.Errorf("CpuUtilization = %v, want 60 (busy 3 of 5)", result.CpuUtilization)
	}

	m := result.Metrics[0]
	if m.CompletionTime != 5 {
		t.Errorf("CompletionTime = %d, want 5", m.CompletionTime)
	}
	if m.TurnAroundTime != 3 {
		t.Errorf("TurnAroundTime = %d, want 3", m.TurnAroundTime)
	}
	if m.WaitingTime != 0 {
		t.Errorf("WaitingTime = %d, want 0", m.WaitingTime)
	}
	if m.ResponseTime != 0 {
		t.Errorf("ResponseTime = %d, want 0", m.ResponseTime)
	}
}

func TestGenerateAnalyticsAverages(t *testing.T) {
	processes := []core.Process{
		proc("P1", 0, 5, 0, 0),
		proc("P2", 2, 3, 0, 1),
		proc("P3", 4, 2, 0, 2),
	}
	timeline, err := Schedule(processes, core.PolicyFirstComeFirstServe, 0)
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}

	result := GenerateAnalytics(processes, timeline)

	// P1 waits 0, P2 waits 3, P3 waits 4.
	if want := (0.0 + 3 + 4) / 3; result.AverageWaitingTime != want {
		t.Errorf("AverageWaitingTime = %v, want %v", result.AverageWaitingTime, want)
	}
	// Turnarounds: 5, 6, 6.
	if want := (5.0 + 6 + 6) / 3; result.AverageTurnAroundTime != want {
		t.Errorf("AverageTurnAroundTime = %v, want %v", result.AverageTurnAroundTime, want)
	}
	if result.AverageResponseTime != result.AverageWaitingTime {
		t.Errorf("non-preemptive run: AverageResponseTime = %v, want %v",
			result.AverageResponseTime, result.AverageWaitingTime)
	}
	if result.CpuUtilization != 100 {
		t.Errorf("CpuUtilization = %v, want 100", result.CpuUtilization)
	}
	if want := 3.0 / 10; result.CpuThroughput != want {
		t.Errorf("CpuThroughput = %v, want %v", result.CpuThroughput, want)
	}
}

func TestGenerateAnalyticsEmptyInput(t *testing.T) {
	result := GenerateAnalytics(nil, nil)

	if len(result.Timeline) != 0 || len(result.Metrics) != 0 {
		t.Errorf("empty input produced timeline %v metrics %v", result.Timeline, result.Metrics)
	}
	if result.AverageWaitingTime != 0 || result.AverageTurnAroundTime != 0 || result.AverageResponseTime != 0 {
		t.Errorf("empty input averages not zero: %+v", result)
	}
	if result.CpuUtilization != 0 || result.TotalTime != 0 {
		t.Errorf("empty input utilization/total not zero: %+v", result)
	}
}

func TestGenerateAnalyticsUnscheduledProcess(t *testing.T) {
	// Defensive case: a process absent from the timeline gets zeroed
	// figures, never negative ones.
	result := GenerateAnalytics(
		[]core.Process{proc("P9", 4, 2, 0, 0)},
		[]core.Segment{{ProcessID: "P1", Start: 0, End: 3}},
	)

	m := result.Metrics[0]
	if m.CompletionTime != 0 || m.TurnAroundTime != 0 || m.WaitingTime != 0 || m.ResponseTime != 0 {
		t.Errorf("unscheduled process metrics = %+v, want all zero", m)
	}
}

func TestGenerateAnalyticsMetricsSortedByID(t *testing.T) {
	processes := []core.Process{
		proc("P3", 0, 1, 0, 0),
		proc("P1", 1, 1, 0, 1),
		proc("P2", 2, 1, 0, 2),
	}
	timeline, err := Schedule(processes, core.PolicyFirstComeFirstServe, 0)
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}

	result := GenerateAnalytics(processes, timeline)
	if !sort.SliceIsSorted(result.Metrics, func(i, j int) bool {
		return result.Metrics[i].ID < result.Metrics[j].ID
	}) {
		t.Errorf("metrics not sorted by id: %+v", result.Metrics)
	}
}

func TestMetricsNeverNegative(t *testing.T) {
	processes := core.ExampleProcesses()
	for _, policy := range core.Policies() {
		timeline, err := Schedule(processes, policy, 2)
		if err != nil {
			t.Fatalf("%s: Schedule failed: %v", policy, err)
		}
		result := GenerateAnalytics(processes, timeline)
		for _, m := range result.Metrics {
			if m.WaitingTime < 0 || m.ResponseTime < 0 || m.TurnAroundTime < 0 {
				t.Errorf("%s: negative metric for %s: %+v", policy, m.ID, m)
			}
		}
	}
}
