package schedulers

import (
	"cpusim/internal/core"
	"cpusim/internal/responses"
	"cpusim/internal/util"
)

// generateResponse derives the aggregate metrics from the finished (or
// partially finished) run. It is a pure read over the table and timeline.
//
// Throughput is the count of completed processes. Utilization is total burst
// time of the completed set over the latest completion time, as a capped
// percentage. Every division guards the empty completed set: a run with no
// completions reports NoData instead of dividing by zero.
func generateResponse(algorithm string, table *core.Table, timeline *core.Timeline) responses.ScheduleResponse {
	response := responses.ScheduleResponse{
		Algorithm:       algorithm,
		TotalTime:       timeline.ElapsedTime(),
		IdleTime:        timeline.IdleTime,
		ContextSwitches: len(timeline.Slices),
		Timeline:        make([]responses.SliceResponse, 0, len(timeline.Slices)),
		QueueSamples:    timeline.QueueSamples,
		Details:         make([]responses.ProcessResponse, 0),
	}
	for _, s := range timeline.Slices {
		response.Timeline = append(response.Timeline, responses.SliceResponse{
			Start:     s.Start,
			ProcessId: s.Pid,
			Duration:  s.Duration,
		})
	}
	for _, p := range table.All() {
		response.Details = append(response.Details, generateProcessDetails(p))
	}

	completed := table.Terminated()
	if len(completed) == 0 {
		response.NoData = true
		return response
	}

	completedDetails := make([]responses.ProcessResponse, 0, len(completed))
	var burstSum, lastCompletion int
	for _, p := range completed {
		completedDetails = append(completedDetails, generateProcessDetails(p))
		burstSum += p.BurstTime
		if p.CompletionTime > lastCompletion {
			lastCompletion = p.CompletionTime
		}
	}

	response.Throughput = len(completed)
	response.AverageWaitingTime, response.AverageResponseTime, response.AverageTurnAroundTime = util.CalculateAverage(completedDetails)
	utilization := float64(burstSum) / float64(lastCompletion) * 100
	if utilization > 100 {
		utilization = 100
	}
	response.CpuUtilization = utilization
	return response
}

func generateProcessDetails(p *core.Process) responses.ProcessResponse {
	detail := responses.ProcessResponse{
		ProcessId:   p.Pid,
		ArrivalTime: p.ArrivalTime,
		BurstTime:   p.BurstTime,
		Priority:    p.Priority,
		State:       p.State.String(),
		StartTime:   p.StartTime,
	}
	if p.State == core.StateTerminated {
		detail.CompletionTime = p.CompletionTime
		detail.ResponseTime = p.ResponseTime
		detail.TurnAroundTime = p.TurnaroundTime
		detail.WaitingTime = p.WaitingTime
	}
	return detail
}
