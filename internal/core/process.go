package core

// IdleID marks a timeline segment during which no process was running.
// No process descriptor ever corresponds to it.
const IdleID = "idle"

// DefaultTimeQuantum is used for round robin when the caller supplies none.
const DefaultTimeQuantum = 2

// Policy selects one of the supported scheduling algorithms.
type Policy string

const (
	PolicyFirstComeFirstServe Policy = "fcfs"
	PolicyShortestJobFirst    Policy = "sjf"
	PolicyPriority            Policy = "priority"
	PolicyRoundRobin          Policy = "rr"
)

// Policies lists every supported policy in presentation order.
func Policies() []Policy {
	return []Policy{
		PolicyFirstComeFirstServe,
		PolicyShortestJobFirst,
		PolicyPriority,
		PolicyRoundRobin,
	}
}

// Process describes one job submitted to the scheduler. It is input only:
// the engine never mutates a caller's Process.
//
// InsertionOrder is assigned by the caller, strictly increasing as
// processes are added, and is the sole tie-breaker when arrival time and
// the policy's primary key are equal.
type Process struct {
	ID             string `json:"id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	InsertionOrder int    `json:"insertion_order"`
}

// Segment is one entry of the simulated timeline. Segments are
// chronological, non-overlapping and contiguous: a segment's End equals
// the next segment's Start.
type Segment struct {
	ProcessID string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

// Idle reports whether the segment represents CPU idle time.
func (s Segment) Idle() bool {
	return s.ProcessID == IdleID
}

// Duration is the length of the segment in time units.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// ProcessMetrics holds the derived timing figures for one process.
type ProcessMetrics struct {
	ID             string `json:"id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
}

// SimulationResult is the terminal artifact of one run: the timeline plus
// per-process and aggregate figures. It is created fresh per run and never
// mutated afterwards.
type SimulationResult struct {
	Timeline              []Segment        `json:"timeline"`
	Metrics               []ProcessMetrics `json:"metrics"`
	TotalTime             int              `json:"total_time"`
	AverageWaitingTime    float64          `json:"average_waiting_time"`
	AverageTurnAroundTime float64          `json:"average_turn_around_time"`
	AverageResponseTime   float64          `json:"average_response_time"`
	CpuUtilization        float64          `json:"cpu_utilization"`
	CpuThroughput         float64          `json:"cpu_throughput"`
}
