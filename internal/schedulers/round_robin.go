package schedulers

import (
	"sort"

	"schedsim/internal/core"
)

// rrProcess is the engine-local working state for one process. The
// remaining burst counter lives here so the caller's descriptors are
// never mutated.
type rrProcess struct {
	core.Process
	remainingBurst int
}

// ScheduleRoundRobin runs the preemptive round robin policy with the
// given time quantum (clamped to a minimum of 1).
//
// Ordering invariant: after a slice finishes, processes that arrived
// during the slice join the ready queue BEFORE the preempted process is
// pushed back. A process arriving at the exact instant a quantum expires
// is therefore queued ahead of the process that just ran.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) []core.Segment {
	if timeQuantum < 1 {
		timeQuantum = 1
	}

	arrivals := make([]*rrProcess, 0, len(processes))
	for _, p := range processes {
		arrivals = append(arrivals, &rrProcess{Process: p, remainingBurst: p.BurstTime})
	}
	sort.SliceStable(arrivals, func(i, j int) bool {
		if arrivals[i].ArrivalTime != arrivals[j].ArrivalTime {
			return arrivals[i].ArrivalTime < arrivals[j].ArrivalTime
		}
		return arrivals[i].InsertionOrder < arrivals[j].InsertionOrder
	})

	timeline := make([]core.Segment, 0, len(processes))
	readyQueue := make([]*rrProcess, 0, len(processes))
	currentTime := 0
	next := 0 // index of the first unarrived process in arrivals

	enqueueArrived := func() {
		for next < len(arrivals) && arrivals[next].ArrivalTime <= currentTime {
			readyQueue = append(readyQueue, arrivals[next])
			next++
		}
	}
	enqueueArrived()

	for len(readyQueue) > 0 || next < len(arrivals) {
		if len(readyQueue) == 0 {
			timeline = append(timeline, core.Segment{
				ProcessID: core.IdleID,
				Start:     currentTime,
				End:       arrivals[next].ArrivalTime,
			})
			currentTime = arrivals[next].ArrivalTime
			enqueueArrived()
			continue
		}

		p := readyQueue[0]
		readyQueue = readyQueue[1:]

		slice := timeQuantum
		if p.remainingBurst < slice {
			slice = p.remainingBurst
		}
		timeline = append(timeline, core.Segment{
			ProcessID: p.ID,
			Start:     currentTime,
			End:       currentTime + slice,
		})
		currentTime += slice
		p.remainingBurst -= slice

		// New arrivals go in front of the preempted process.
		enqueueArrived()
		if p.remainingBurst > 0 {
			readyQueue = append(readyQueue, p)
		}
	}

	return timeline
}
