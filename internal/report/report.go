// Package report renders engine output for humans: a schedule table, an
// ASCII gantt chart and a metrics bar chart. The engine itself emits plain
// structured data only; everything here is a consumer of that data.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpusim/internal/responses"
)

// WriteText renders the full text report for one run: title, gantt chart,
// schedule table with averages, aggregate metrics.
func WriteText(w io.Writer, response responses.ScheduleResponse) {
	outputTitle(w, response.Algorithm)
	outputGantt(w, MergeSlices(response.Timeline))
	outputSchedule(w, response)
	outputMetrics(w, response)
}

// MergeSlices collapses adjacent slices of the same process with no gap
// between them. The engine records one slice per scheduling decision; the
// merged form only exists for display.
func MergeSlices(slices []responses.SliceResponse) []responses.SliceResponse {
	merged := make([]responses.SliceResponse, 0, len(slices))
	for _, s := range slices {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.ProcessId == s.ProcessId && last.Start+last.Duration == s.Start {
				last.Duration += s.Duration
				continue
			}
		}
		merged = append(merged, s)
	}
	return merged
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []responses.SliceResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprintf("P%d", gantt[i].ProcessId)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start+gantt[i].Duration))
		}
	}
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Exit", "Wait", "Turnaround", "Response"})
	for _, detail := range response.Details {
		table.Append([]string{
			fmt.Sprint(detail.ProcessId),
			fmt.Sprint(detail.Priority),
			fmt.Sprint(detail.BurstTime),
			fmt.Sprint(detail.ArrivalTime),
			fmt.Sprint(detail.StartTime),
			fmt.Sprint(detail.CompletionTime),
			fmt.Sprint(detail.WaitingTime),
			fmt.Sprint(detail.TurnAroundTime),
			fmt.Sprint(detail.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)})
	table.Render()
}

func outputMetrics(w io.Writer, response responses.ScheduleResponse) {
	if response.NoData {
		_, _ = fmt.Fprintln(w, "no data")
		return
	}
	_, _ = fmt.Fprintf(w, "Total time: %d\n", response.TotalTime)
	_, _ = fmt.Fprintf(w, "Idle time: %d\n", response.IdleTime)
	_, _ = fmt.Fprintf(w, "Context switches: %d\n", response.ContextSwitches)
	_, _ = fmt.Fprintf(w, "Throughput: %d\n", response.Throughput)
	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%\n", response.CpuUtilization)
}
