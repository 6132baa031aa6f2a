package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"cpusim/internal/requests"
	"cpusim/internal/responses"
	"cpusim/internal/schedulers"
)

func TestMergeSlices(t *testing.T) {
	slices := []responses.SliceResponse{
		{Start: 0, ProcessId: 1, Duration: 1},
		{Start: 1, ProcessId: 1, Duration: 1},
		{Start: 2, ProcessId: 2, Duration: 1},
		{Start: 3, ProcessId: 1, Duration: 1},
		// gap: same pid but not contiguous, stays separate
		{Start: 6, ProcessId: 1, Duration: 2},
	}

	want := []responses.SliceResponse{
		{Start: 0, ProcessId: 1, Duration: 2},
		{Start: 2, ProcessId: 2, Duration: 1},
		{Start: 3, ProcessId: 1, Duration: 1},
		{Start: 6, ProcessId: 1, Duration: 2},
	}
	if diff := cmp.Diff(want, MergeSlices(slices)); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteText(t *testing.T) {
	ass := assert.New(t)
	response, err := schedulers.ScheduleFirstComeFirstServe(context.Background(), requests.ScheduleRequest{
		Jobs: []requests.Job{
			{ProcessId: 1, ArrivalTime: 0, BurstTime: 5},
			{ProcessId: 2, ArrivalTime: 1, BurstTime: 3},
		},
	})
	ass.NoError(err)

	var buffer bytes.Buffer
	WriteText(&buffer, response)
	output := buffer.String()

	ass.Contains(output, "fcfs")
	ass.Contains(output, "Gantt schedule")
	ass.Contains(output, "Schedule table")
	ass.Contains(output, "CPU utilization: 100.00%")
	ass.Contains(output, "Context switches: 2")
}

func TestWriteText_NoData(t *testing.T) {
	ass := assert.New(t)
	var buffer bytes.Buffer
	WriteText(&buffer, responses.ScheduleResponse{Algorithm: "fcfs", NoData: true})
	ass.Contains(buffer.String(), "no data")
}

func TestPlotAverages(t *testing.T) {
	ass := assert.New(t)
	chart, err := PlotAverages(responses.ScheduleResponse{
		Algorithm:             "fcfs",
		AverageWaitingTime:    2,
		AverageTurnAroundTime: 6.5,
		AverageResponseTime:   1.25,
	})
	ass.NoError(err)
	var buffer bytes.Buffer
	_, err = chart.WriteTo(&buffer)
	ass.NoError(err)
	ass.NotZero(buffer.Len())
}
