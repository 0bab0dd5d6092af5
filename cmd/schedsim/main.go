package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "schedsim - CPU scheduling algorithm simulator",
	Long: `schedsim deterministically reconstructs how a uniprocessor CPU
scheduler would interleave a known set of processes under FCFS, SJF,
Priority and Round Robin, and reports the timeline plus timing metrics.`,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
