package core

// ExampleProcesses returns a fixed, always-valid demo set of five
// processes. The mix of arrival times, burst lengths and priorities is
// chosen so every policy produces a visibly different timeline.
func ExampleProcesses() []Process {
	return []Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 8, Priority: 2, InsertionOrder: 0},
		{ID: "P2", ArrivalTime: 1, BurstTime: 4, Priority: 1, InsertionOrder: 1},
		{ID: "P3", ArrivalTime: 2, BurstTime: 9, Priority: 3, InsertionOrder: 2},
		{ID: "P4", ArrivalTime: 3, BurstTime: 5, Priority: 2, InsertionOrder: 3},
		{ID: "P5", ArrivalTime: 4, BurstTime: 2, Priority: 0, InsertionOrder: 4},
	}
}
