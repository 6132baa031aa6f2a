package schedulers

import (
	"context"
	"log"

	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// ScheduleFirstComeFirstServe runs the job set non-preemptively in arrival
// order.
func ScheduleFirstComeFirstServe(ctx context.Context, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	log.Println("running fcfs algorithm ...")
	table, err := core.NewTable(request.Jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeline, err := simulate(ctx, table, func(ready []*core.Process) *core.Process {
		return pickMin(ready, func(p *core.Process) int { return p.ArrivalTime })
	}, runToCompletion)
	return generateResponse(AlgorithmFirstComeFirstServe, table, timeline), err
}
