package requests

import "schedsim/internal/core"

// ProcessSpec is a process descriptor as submitted over the API. The
// caller does not send an insertion order; it is assigned from the
// position of the spec within the request.
type ProcessSpec struct {
	ID          string `json:"id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

// ScheduleRequest carries one simulation's input. TimeQuantum only
// matters for round robin; zero means "use the configured default".
type ScheduleRequest struct {
	Processes   []ProcessSpec `json:"processes"`
	TimeQuantum int           `json:"time_quantum,omitempty"`
}

// ToProcesses converts the request into engine descriptors, stamping
// each with its insertion order.
func (r *ScheduleRequest) ToProcesses() []core.Process {
	processes := make([]core.Process, 0, len(r.Processes))
	for i, spec := range r.Processes {
		processes = append(processes, core.Process{
			ID:             spec.ID,
			ArrivalTime:    spec.ArrivalTime,
			BurstTime:      spec.BurstTime,
			Priority:       spec.Priority,
			InsertionOrder: i,
		})
	}
	return processes
}
