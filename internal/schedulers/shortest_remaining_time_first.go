package schedulers

import (
	"context"
	"log"

	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// ScheduleShortestRemainingTimeFirst is the preemptive variant of sjf:
// selection is re-evaluated every clock unit over remaining time, so a newly
// arrived shorter job takes the CPU away from the running one.
func ScheduleShortestRemainingTimeFirst(ctx context.Context, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	log.Println("running srtf algorithm ...")
	table, err := core.NewTable(request.Jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeline, err := simulate(ctx, table, func(ready []*core.Process) *core.Process {
		return pickMin(ready, func(p *core.Process) int { return p.RemainingTime })
	}, unitSlice)
	return generateResponse(AlgorithmShortestRemainingTimeFirst, table, timeline), err
}
