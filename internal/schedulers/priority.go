package schedulers

import (
	"context"
	"log"

	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// SchedulePriority runs the ready process with the smallest priority value
// (lower value means higher priority) to completion.
func SchedulePriority(ctx context.Context, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	log.Println("running priority algorithm ...")
	table, err := core.NewTable(request.Jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeline, err := simulate(ctx, table, func(ready []*core.Process) *core.Process {
		return pickMin(ready, func(p *core.Process) int { return p.Priority })
	}, runToCompletion)
	return generateResponse(AlgorithmPriority, table, timeline), err
}

// SchedulePreemptivePriority re-evaluates the priority selection every clock
// unit, so a higher-priority arrival preempts the running process.
func SchedulePreemptivePriority(ctx context.Context, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	log.Println("running preemptive priority algorithm ...")
	table, err := core.NewTable(request.Jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeline, err := simulate(ctx, table, func(ready []*core.Process) *core.Process {
		return pickMin(ready, func(p *core.Process) int { return p.Priority })
	}, unitSlice)
	return generateResponse(AlgorithmPreemptivePriority, table, timeline), err
}
