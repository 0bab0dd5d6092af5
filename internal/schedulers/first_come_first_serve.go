package schedulers

import "schedsim/internal/core"

// ScheduleFirstComeFirstServe runs processes strictly in arrival order,
// insertion order breaking arrival ties.
//
// FCFS could be computed as one global sort followed by a single sweep,
// but routing it through the shared loop keeps the idle handling in one
// place; the resulting timeline is identical.
func ScheduleFirstComeFirstServe(processes []core.Process) []core.Segment {
	return runNonPreemptive(processes, func(a, b core.Process) bool {
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.InsertionOrder < b.InsertionOrder
	})
}
