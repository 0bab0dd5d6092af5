package responses

import "schedsim/internal/core"

// ScheduleResponse wraps one simulation run for the API. RunId is
// assigned per request so clients comparing several runs can tell the
// payloads apart.
type ScheduleResponse struct {
	RunId       string                `json:"run_id"`
	Policy      string                `json:"policy"`
	TimeQuantum int                   `json:"time_quantum,omitempty"`
	Result      core.SimulationResult `json:"result"`
}

// CompareResponse carries the outcome of running every policy over the
// same process set.
type CompareResponse struct {
	RunId       string                           `json:"run_id"`
	TimeQuantum int                              `json:"time_quantum"`
	Results     map[string]core.SimulationResult `json:"results"`
}

// ProcessValidation pairs a submitted process (by position and id) with
// its validation outcome.
type ProcessValidation struct {
	Index  int             `json:"index"`
	Id     string          `json:"id"`
	Report core.Validation `json:"report"`
}

// ValidateResponse reports validation of a whole submitted process set.
// Valid is false if any process fails its own checks or if two processes
// share an id.
type ValidateResponse struct {
	Valid     bool                `json:"valid"`
	Processes []ProcessValidation `json:"processes"`
	SetErrors []string            `json:"set_errors,omitempty"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
