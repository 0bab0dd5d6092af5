// Package schedulers implements the deterministic scheduling engine:
// given a list of process descriptors and a policy it reconstructs the
// timeline a uniprocessor CPU scheduler would produce.
package schedulers

import (
	"errors"
	"fmt"

	"schedsim/internal/core"
)

// ErrUnsupportedPolicy is returned when the policy token is not one of
// the four recognized values. This is a programmer error: the call is
// aborted and no partial timeline is produced.
var ErrUnsupportedPolicy = errors.New("unsupported scheduling policy")

// ErrDuplicateProcessID is returned when two descriptors in one request
// share an id. Metrics are attributed by id, so duplicates would merge
// two processes' figures silently; the engine rejects them instead.
var ErrDuplicateProcessID = errors.New("duplicate process id")

// Schedule runs the chosen policy over the given processes and returns
// the resulting timeline. The input is treated as read-only; the engine
// works on its own copy. timeQuantum only matters for round robin and is
// clamped to a minimum of one time unit per slice.
//
// An empty input yields an empty timeline, no idle filler segment.
func Schedule(processes []core.Process, policy core.Policy, timeQuantum int) ([]core.Segment, error) {
	if err := checkUniqueIDs(processes); err != nil {
		return nil, err
	}
	switch policy {
	case core.PolicyFirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes), nil
	case core.PolicyShortestJobFirst:
		return ScheduleShortestJobFirst(processes), nil
	case core.PolicyPriority:
		return SchedulePriority(processes), nil
	case core.PolicyRoundRobin:
		return ScheduleRoundRobin(processes, timeQuantum), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPolicy, policy)
	}
}

func checkUniqueIDs(processes []core.Process) error {
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateProcessID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// runNonPreemptive drives the state machine shared by the non-preemptive
// policies. At every decision point it picks, among the processes that
// have already arrived, the one that wins under less; when none has
// arrived yet it emits an idle segment up to the next arrival. Processes
// are removed from the remaining pool by position, never matched by
// field values, so duplicate bursts or priorities are safe.
func runNonPreemptive(processes []core.Process, less func(a, b core.Process) bool) []core.Segment {
	remaining := make([]core.Process, len(processes))
	copy(remaining, processes)

	timeline := make([]core.Segment, 0, len(processes))
	currentTime := 0

	for len(remaining) > 0 {
		selected := -1
		nextArrival := remaining[0].ArrivalTime
		for i, p := range remaining {
			if p.ArrivalTime < nextArrival {
				nextArrival = p.ArrivalTime
			}
			if p.ArrivalTime > currentTime {
				continue
			}
			if selected == -1 || less(p, remaining[selected]) {
				selected = i
			}
		}

		if selected == -1 {
			// CPU sits idle until the earliest remaining arrival.
			timeline = append(timeline, core.Segment{
				ProcessID: core.IdleID,
				Start:     currentTime,
				End:       nextArrival,
			})
			currentTime = nextArrival
			continue
		}

		p := remaining[selected]
		timeline = append(timeline, core.Segment{
			ProcessID: p.ID,
			Start:     currentTime,
			End:       currentTime + p.BurstTime,
		})
		currentTime += p.BurstTime
		remaining = append(remaining[:selected], remaining[selected+1:]...)
	}

	return timeline
}
