package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schedsim/config"
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Validate(ctx *fiber.Ctx) error
	Examples(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Register mounts all simulator routes on the given router group.
func (s *SchedulerHandlerImpl) Register(router fiber.Router) {
	router.Post("/fcfs", s.FirstComeFirstServe)
	router.Post("/sjf", s.ShortestJobFirst)
	router.Post("/priority", s.Priority)
	router.Post("/rr", s.RoundRobin)
	router.Post("/all", s.AllAlgorithms)
	router.Post("/validate", s.Validate)
	router.Get("/examples", s.Examples)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PolicyFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PolicyShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PolicyPriority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PolicyRoundRobin)
}

// AllAlgorithms runs every policy over the same process set so clients
// can compare the timelines side by side.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, quantum, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}

	processes := request.ToProcesses()
	results := make(map[string]core.SimulationResult, len(core.Policies()))
	for _, policy := range core.Policies() {
		timeline, err := schedulers.Schedule(processes, policy, quantum)
		if err != nil {
			return scheduleError(ctx, err)
		}
		results[string(policy)] = schedulers.GenerateAnalytics(processes, timeline)
	}

	return ctx.JSON(responses.CompareResponse{
		RunId:       uuid.New().String(),
		TimeQuantum: quantum,
		Results:     results,
	})
}

// Validate checks every submitted process independently and reports all
// violations, plus set-level id collisions.
func (s *SchedulerHandlerImpl) Validate(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}

	response := responses.ValidateResponse{Valid: true}
	seen := make(map[string]int)
	for i, spec := range request.Processes {
		report := core.Validate(core.Process{
			ID:          spec.ID,
			ArrivalTime: spec.ArrivalTime,
			BurstTime:   spec.BurstTime,
			Priority:    spec.Priority,
		})
		if !report.Valid {
			response.Valid = false
		}
		if _, dup := seen[spec.ID]; dup {
			response.Valid = false
			response.SetErrors = append(response.SetErrors, "duplicate id "+spec.ID)
		}
		seen[spec.ID] = i
		response.Processes = append(response.Processes, responses.ProcessValidation{
			Index:  i,
			Id:     spec.ID,
			Report: report,
		})
	}

	return ctx.JSON(response)
}

// Examples returns the built-in demo process set.
func (s *SchedulerHandlerImpl) Examples(ctx *fiber.Ctx) error {
	return ctx.JSON(core.ExampleProcesses())
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy core.Policy) error {
	request, quantum, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}

	processes := request.ToProcesses()
	timeline, err := schedulers.Schedule(processes, policy, quantum)
	if err != nil {
		return scheduleError(ctx, err)
	}

	response := responses.ScheduleResponse{
		RunId:  uuid.New().String(),
		Policy: string(policy),
		Result: schedulers.GenerateAnalytics(processes, timeline),
	}
	if policy == core.PolicyRoundRobin {
		response.TimeQuantum = quantum
	}
	return ctx.JSON(response)
}

// parseRequest parses the body, rejects invalid descriptors up front and
// resolves the effective time quantum. On failure it has already written
// the error response.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, int, bool) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		_ = badRequest(ctx, "invalid request format")
		return nil, 0, false
	}

	for i, spec := range request.Processes {
		process := core.Process{
			ID:          spec.ID,
			ArrivalTime: spec.ArrivalTime,
			BurstTime:   spec.BurstTime,
			Priority:    spec.Priority,
		}
		if report := core.Validate(process); !report.Valid {
			log.Printf("rejecting process %d (%s): %v", i, spec.ID, report.Errors)
			_ = badRequest(ctx, "invalid process "+spec.ID+": "+report.Errors[0])
			return nil, 0, false
		}
	}

	quantum := request.TimeQuantum
	if quantum <= 0 {
		quantum = s.config.RoundRobinTimeQuantum
	}
	return &request, quantum, true
}

func scheduleError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, schedulers.ErrDuplicateProcessID) || errors.Is(err, schedulers.ErrUnsupportedPolicy) {
		return badRequest(ctx, err.Error())
	}
	return ctx.Status(fiber.StatusInternalServerError).
		JSON(responses.ErrorResponse{Error: "can not process request"})
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: message})
}
