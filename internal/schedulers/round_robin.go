package schedulers

import (
	"context"
	"fmt"
	"log"

	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// ScheduleRoundRobin grants the CPU in FIFO order for at most timeQuantum
// units per turn. A process preempted by quantum expiry re-enters the queue
// tail behind any processes that arrived during its slice.
func ScheduleRoundRobin(ctx context.Context, request requests.ScheduleRequest, timeQuantum int) (responses.ScheduleResponse, error) {
	log.Println("running roundRobin algorithm with timeQuantum =", timeQuantum)
	if timeQuantum <= 0 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: time quantum must be positive, got %d", core.ErrConfiguration, timeQuantum)
	}
	table, err := core.NewTable(request.Jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	timeline := core.NewTimeline()
	clock := 0
	queue := append([]*core.Process(nil), table.Admit(clock)...)
	for !table.AllTerminated() {
		if err := ctx.Err(); err != nil {
			return generateResponse(AlgorithmRoundRobin, table, timeline), err
		}
		timeline.Sample(len(queue))
		if len(queue) == 0 {
			timeline.MarkIdle()
			clock++
			queue = append(queue, table.Admit(clock)...)
			continue
		}
		next := queue[0]
		queue = queue[1:]
		table.Dispatch(next, clock)
		n := timeQuantum
		if n > next.RemainingTime {
			n = next.RemainingTime
		}
		timeline.Record(clock, next.Pid, n)
		clock += n
		next.RemainingTime -= n
		// arrivals during the slice enqueue ahead of the preempted process
		queue = append(queue, table.Admit(clock)...)
		if next.RemainingTime == 0 {
			table.Finish(next, clock)
		} else {
			table.Preempt(next)
			queue = append(queue, next)
		}
	}
	return generateResponse(AlgorithmRoundRobin, table, timeline), nil
}
