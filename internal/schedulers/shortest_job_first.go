package schedulers

import "schedsim/internal/core"

// ScheduleShortestJobFirst picks, among the processes that have already
// arrived, the one with the smallest burst time. Non-preemptive: once a
// process starts it runs to completion, even if a shorter job arrives
// mid-burst. Ties fall back to arrival time, then insertion order.
func ScheduleShortestJobFirst(processes []core.Process) []core.Segment {
	return runNonPreemptive(processes, func(a, b core.Process) bool {
		if a.BurstTime != b.BurstTime {
			return a.BurstTime < b.BurstTime
		}
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.InsertionOrder < b.InsertionOrder
	})
}
