package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"schedsim/config"
	"schedsim/internal/core"
	"schedsim/internal/gantt"
	"schedsim/internal/requests"
	"schedsim/internal/schedulers"
)

var (
	runPolicy  string
	runQuantum int
	runFile    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and print the Gantt chart",
	Long: `Run simulates the given policy over a process set and prints the
resulting Gantt chart and timing metrics. Processes are read from the
JSON file given with --file; without a file the built-in example set
is used.`,
	RunE: runSimulation,
}

func init() {
	runCmd.Flags().StringVarP(&runPolicy, "policy", "p", "fcfs", "scheduling policy (fcfs, sjf, priority, rr)")
	runCmd.Flags().IntVarP(&runQuantum, "quantum", "q", 0, "round robin time quantum (0 = configured default)")
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "JSON file with the process set")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg := config.GetSchedulerConfig()

	processes, err := loadProcesses()
	if err != nil {
		return err
	}
	for _, p := range processes {
		if report := core.Validate(p); !report.Valid {
			return fmt.Errorf("invalid process %q: %v", p.ID, report.Errors)
		}
	}

	quantum := runQuantum
	if quantum <= 0 {
		quantum = cfg.RoundRobinTimeQuantum
	}

	timeline, err := schedulers.Schedule(processes, core.Policy(runPolicy), quantum)
	if err != nil {
		return err
	}
	result := schedulers.GenerateAnalytics(processes, timeline)

	fmt.Print(gantt.Chart(result, cfg.GanttChartWidth))
	fmt.Println()
	fmt.Print(gantt.MetricsTable(result))
	return nil
}

func loadProcesses() ([]core.Process, error) {
	if runFile == "" {
		return core.ExampleProcesses(), nil
	}

	data, err := os.ReadFile(runFile)
	if err != nil {
		return nil, fmt.Errorf("read process file: %w", err)
	}
	var request requests.ScheduleRequest
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("parse process file: %w", err)
	}
	if runQuantum == 0 && request.TimeQuantum > 0 {
		runQuantum = request.TimeQuantum
	}
	return request.ToProcesses(), nil
}
