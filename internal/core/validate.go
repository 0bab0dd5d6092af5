package core

import "strings"

// Validation is the outcome of checking one process descriptor. Every
// violated rule contributes one message, so a caller can surface all
// problems at once instead of fixing them one by one.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks a single process descriptor for well-formedness. All
// rules are checked independently. It deliberately does not check id
// uniqueness across a process set; that is the caller's responsibility.
func Validate(p Process) Validation {
	var errs []string
	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, "id must not be empty")
	}
	if p.ArrivalTime < 0 {
		errs = append(errs, "arrival time must be >= 0")
	}
	if p.BurstTime <= 0 {
		errs = append(errs, "burst time must be > 0")
	}
	if p.Priority < 0 {
		errs = append(errs, "priority must be >= 0")
	}
	return Validation{Valid: len(errs) == 0, Errors: errs}
}
