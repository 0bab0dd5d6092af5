package schedulers

import "schedsim/internal/core"

// SchedulePriority picks, among the processes that have already arrived,
// the one with the lowest priority number (lower value = higher
// priority). Non-preemptive. Ties fall back to arrival time, then
// insertion order.
func SchedulePriority(processes []core.Process) []core.Segment {
	return runNonPreemptive(processes, func(a, b core.Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.InsertionOrder < b.InsertionOrder
	})
}
