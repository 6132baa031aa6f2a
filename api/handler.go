package api

import (
	"bytes"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"cpusim/config"
	"cpusim/internal/core"
	"cpusim/internal/report"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
	"cpusim/internal/schedulers"
	"cpusim/internal/workload"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PreemptivePriority(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Report(ctx *fiber.Ctx) error
	GenerateWorkload(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

type runFunc func(ctx context.Context, request requests.ScheduleRequest) (responses.ScheduleResponse, error)

// schedule parses the request body, runs the given algorithm and writes the
// result. Configuration errors come back as 400, everything else as 500.
func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, run runFunc) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := run(ctx.UserContext(), request)
	if err != nil {
		if errors.Is(err, core.ErrConfiguration) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(c context.Context, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
		return schedulers.ScheduleRoundRobin(c, request, s.timeQuantum(request))
	})
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SchedulePriority)
}

func (s *SchedulerHandlerImpl) PreemptivePriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SchedulePreemptivePriority)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(c context.Context, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
		return schedulers.ScheduleMultilevelFeedbackQueue(c, request, s.config.MultilevelFeedbackQueueLevelsTimeQuantum)
	})
}

// AllAlgorithms runs every algorithm over one job set and returns the
// responses in a stable order, for side-by-side comparison.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	results := make([]responses.ScheduleResponse, 0, len(schedulers.Algorithms()))
	for _, algorithm := range schedulers.Algorithms() {
		response, err := schedulers.Schedule(ctx.UserContext(), algorithm, request,
			s.timeQuantum(request), s.config.MultilevelFeedbackQueueLevelsTimeQuantum)
		if err != nil {
			if errors.Is(err, core.ErrConfiguration) {
				return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
		}
		results = append(results, response)
	}
	return ctx.JSON(results)
}

// Report runs the algorithm named in the path and renders the result as a
// plain-text report, or as a PNG metrics chart with ?format=png.
func (s *SchedulerHandlerImpl) Report(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := schedulers.Schedule(ctx.UserContext(), ctx.Params("algorithm"), request,
		s.timeQuantum(request), s.config.MultilevelFeedbackQueueLevelsTimeQuantum)
	if err != nil {
		if errors.Is(err, core.ErrConfiguration) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}

	var buffer bytes.Buffer
	if ctx.Query("format") == "png" {
		chart, err := report.PlotAverages(response)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not render chart"})
		}
		if _, err := chart.WriteTo(&buffer); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not render chart"})
		}
		ctx.Type("png")
		return ctx.Send(buffer.Bytes())
	}
	report.WriteText(&buffer, response)
	return ctx.SendString(buffer.String())
}

// GenerateWorkload returns a random job set. Missing body fields fall back
// to the configured defaults.
func (s *SchedulerHandlerImpl) GenerateWorkload(ctx *fiber.Ctx) error {
	request := requests.WorkloadRequest{
		Count:       s.config.Workload.Count,
		ArrivalMin:  s.config.Workload.ArrivalMin,
		ArrivalMax:  s.config.Workload.ArrivalMax,
		BurstMin:    s.config.Workload.BurstMin,
		BurstMax:    s.config.Workload.BurstMax,
		PriorityMin: s.config.Workload.PriorityMin,
		PriorityMax: s.config.Workload.PriorityMax,
	}
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&request); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request format",
			})
		}
	}
	jobs, seed, err := workload.Generate(request)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	response := responses.WorkloadResponse{Seed: seed, Jobs: make([]responses.WorkloadJob, 0, len(jobs))}
	for _, job := range jobs {
		response.Jobs = append(response.Jobs, responses.WorkloadJob{
			ProcessId:   job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) timeQuantum(request requests.ScheduleRequest) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}
