package schedulers

import (
	"context"
	"log"

	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// ScheduleShortestJobFirst picks the ready process with the smallest burst
// time and runs it to completion.
func ScheduleShortestJobFirst(ctx context.Context, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	log.Println("running sjf algorithm ...")
	table, err := core.NewTable(request.Jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeline, err := simulate(ctx, table, func(ready []*core.Process) *core.Process {
		return pickMin(ready, func(p *core.Process) int { return p.BurstTime })
	}, runToCompletion)
	return generateResponse(AlgorithmShortestJobFirst, table, timeline), err
}
