package schedulers

import (
	"context"
	"fmt"
	"log"

	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// ScheduleMultilevelFeedbackQueue runs one round-robin queue per quantum in
// timeQuantumList. New arrivals enter the first level; a process that
// exhausts its quantum without finishing demotes one level and stays on the
// last level from then on. Selection always serves the lowest non-empty
// level.
func ScheduleMultilevelFeedbackQueue(ctx context.Context, request requests.ScheduleRequest, timeQuantumList []int) (responses.ScheduleResponse, error) {
	log.Println("running mlfq algorithm with timeQuantum =", timeQuantumList)
	if len(timeQuantumList) == 0 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: mlfq needs at least one queue level", core.ErrConfiguration)
	}
	for _, quantum := range timeQuantumList {
		if quantum <= 0 {
			return responses.ScheduleResponse{}, fmt.Errorf("%w: time quantum must be positive, got %d", core.ErrConfiguration, quantum)
		}
	}
	table, err := core.NewTable(request.Jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	levels := make([][]*core.Process, len(timeQuantumList))
	queued := 0
	admit := func(clock int) {
		arrived := table.Admit(clock)
		levels[0] = append(levels[0], arrived...)
		queued += len(arrived)
	}

	timeline := core.NewTimeline()
	clock := 0
	admit(clock)
	for !table.AllTerminated() {
		if err := ctx.Err(); err != nil {
			return generateResponse(AlgorithmMultilevelFeedbackQueue, table, timeline), err
		}
		timeline.Sample(queued)
		level := -1
		for i := range levels {
			if len(levels[i]) > 0 {
				level = i
				break
			}
		}
		if level < 0 {
			timeline.MarkIdle()
			clock++
			admit(clock)
			continue
		}
		next := levels[level][0]
		levels[level] = levels[level][1:]
		queued--
		table.Dispatch(next, clock)
		n := timeQuantumList[level]
		if n > next.RemainingTime {
			n = next.RemainingTime
		}
		timeline.Record(clock, next.Pid, n)
		clock += n
		next.RemainingTime -= n
		admit(clock)
		if next.RemainingTime == 0 {
			table.Finish(next, clock)
		} else {
			table.Preempt(next)
			demoted := level + 1
			if demoted >= len(levels) {
				demoted = len(levels) - 1
			}
			levels[demoted] = append(levels[demoted], next)
			queued++
		}
	}
	return generateResponse(AlgorithmMultilevelFeedbackQueue, table, timeline), nil
}
