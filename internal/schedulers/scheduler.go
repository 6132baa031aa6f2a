package schedulers

import (
	"context"
	"fmt"

	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

const (
	AlgorithmFirstComeFirstServe        = "fcfs"
	AlgorithmShortestJobFirst           = "sjf"
	AlgorithmShortestRemainingTimeFirst = "srtf"
	AlgorithmRoundRobin                 = "rr"
	AlgorithmPriority                   = "priority"
	AlgorithmPreemptivePriority         = "preemptive_priority"
	AlgorithmMultilevelFeedbackQueue    = "mlfq"
)

// selectFunc picks the next process from the ready set; nil means the CPU
// stays idle for one clock unit.
type selectFunc func(ready []*core.Process) *core.Process

// sliceFunc bounds how long the selected process keeps the CPU. The loop
// clamps the result to the remaining time.
type sliceFunc func(p *core.Process) int

func runToCompletion(p *core.Process) int { return p.RemainingTime }

func unitSlice(*core.Process) int { return 1 }

// pickMin returns the ready process with the smallest key, breaking ties by
// lowest pid.
func pickMin(ready []*core.Process, key func(*core.Process) int) *core.Process {
	if len(ready) == 0 {
		return nil
	}
	best := ready[0]
	for _, p := range ready[1:] {
		if key(p) < key(best) || (key(p) == key(best) && p.Pid < best.Pid) {
			best = p
		}
	}
	return best
}

// simulate is the one scheduling loop shared by every policy except round
// robin and mlfq (which need their own queue discipline): admit arrivals,
// select, execute, record, until every process terminated. Preemptive
// policies pass unitSlice so selection is re-evaluated every clock unit.
//
// The context is checked once per iteration; a cancelled run stops advancing
// the clock and returns the partial timeline alongside ctx.Err().
func simulate(ctx context.Context, table *core.Table, pick selectFunc, slice sliceFunc) (*core.Timeline, error) {
	timeline := core.NewTimeline()
	clock := 0
	table.Admit(clock)
	for !table.AllTerminated() {
		if err := ctx.Err(); err != nil {
			return timeline, err
		}
		ready := table.Ready()
		timeline.Sample(len(ready))
		next := pick(ready)
		if next == nil {
			timeline.MarkIdle()
			clock++
			table.Admit(clock)
			continue
		}
		table.Dispatch(next, clock)
		n := slice(next)
		if n > next.RemainingTime {
			n = next.RemainingTime
		}
		timeline.Record(clock, next.Pid, n)
		clock += n
		next.RemainingTime -= n
		table.Admit(clock)
		if next.RemainingTime == 0 {
			table.Finish(next, clock)
		} else {
			table.Preempt(next)
		}
	}
	return timeline, nil
}

// Schedule runs one algorithm by name. The quantum is only consulted by
// round robin and mlfq.
func Schedule(ctx context.Context, algorithm string, request requests.ScheduleRequest, quantum int, mlfqQuanta []int) (responses.ScheduleResponse, error) {
	switch algorithm {
	case AlgorithmFirstComeFirstServe:
		return ScheduleFirstComeFirstServe(ctx, request)
	case AlgorithmShortestJobFirst:
		return ScheduleShortestJobFirst(ctx, request)
	case AlgorithmShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(ctx, request)
	case AlgorithmRoundRobin:
		return ScheduleRoundRobin(ctx, request, quantum)
	case AlgorithmPriority:
		return SchedulePriority(ctx, request)
	case AlgorithmPreemptivePriority:
		return SchedulePreemptivePriority(ctx, request)
	case AlgorithmMultilevelFeedbackQueue:
		return ScheduleMultilevelFeedbackQueue(ctx, request, mlfqQuanta)
	default:
		return responses.ScheduleResponse{}, fmt.Errorf("%w: unknown algorithm %q", core.ErrConfiguration, algorithm)
	}
}

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []string {
	return []string{
		AlgorithmFirstComeFirstServe,
		AlgorithmShortestJobFirst,
		AlgorithmShortestRemainingTimeFirst,
		AlgorithmRoundRobin,
		AlgorithmPriority,
		AlgorithmPreemptivePriority,
		AlgorithmMultilevelFeedbackQueue,
	}
}
