package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpusim/internal/requests"
)

func TestNewTable_Validation(t *testing.T) {
	ass := assert.New(t)

	tests := []struct {
		name    string
		jobs    []requests.Job
		wantErr bool
	}{
		{
			name:    "empty job set",
			jobs:    nil,
			wantErr: true,
		},
		{
			name: "non-positive burst time",
			jobs: []requests.Job{
				{ProcessId: 1, ArrivalTime: 0, BurstTime: 0},
			},
			wantErr: true,
		},
		{
			name: "negative arrival time",
			jobs: []requests.Job{
				{ProcessId: 1, ArrivalTime: -1, BurstTime: 5},
			},
			wantErr: true,
		},
		{
			name: "duplicate process id",
			jobs: []requests.Job{
				{ProcessId: 1, ArrivalTime: 0, BurstTime: 5},
				{ProcessId: 1, ArrivalTime: 1, BurstTime: 3},
			},
			wantErr: true,
		},
		{
			name: "valid job set",
			jobs: []requests.Job{
				{ProcessId: 1, ArrivalTime: 0, BurstTime: 5},
				{ProcessId: 2, ArrivalTime: 1, BurstTime: 3, Priority: 2},
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.jobs)
			if tt.wantErr {
				ass.ErrorIs(err, ErrConfiguration)
				ass.Nil(table)
				return
			}
			ass.NoError(err)
			ass.NotNil(table)
		})
	}
}

func TestTable_AdmitOrderAndStates(t *testing.T) {
	ass := assert.New(t)
	table, err := NewTable([]requests.Job{
		{ProcessId: 3, ArrivalTime: 2, BurstTime: 1},
		{ProcessId: 1, ArrivalTime: 2, BurstTime: 4},
		{ProcessId: 2, ArrivalTime: 0, BurstTime: 2},
	})
	ass.NoError(err)

	admitted := table.Admit(0)
	ass.Len(admitted, 1)
	ass.Equal(2, admitted[0].Pid)
	ass.Equal(StateReady, admitted[0].State)

	// ties at the same arrival time admit in pid order
	admitted = table.Admit(2)
	ass.Len(admitted, 2)
	ass.Equal(1, admitted[0].Pid)
	ass.Equal(3, admitted[1].Pid)

	// a second admit at the same clock is a no-op
	ass.Empty(table.Admit(2))
}

func TestTable_DispatchFixesStartTimeOnce(t *testing.T) {
	ass := assert.New(t)
	table, err := NewTable([]requests.Job{
		{ProcessId: 1, ArrivalTime: 1, BurstTime: 4},
	})
	ass.NoError(err)
	table.Admit(1)
	p := table.Get(1)

	table.Dispatch(p, 3)
	ass.Equal(3, p.StartTime)
	ass.Equal(2, p.ResponseTime)
	ass.Equal(StateRunning, p.State)

	table.Preempt(p)
	ass.Equal(StateReady, p.State)

	// re-dispatch after preemption must not move the start time
	table.Dispatch(p, 9)
	ass.Equal(3, p.StartTime)
	ass.Equal(2, p.ResponseTime)
}

func TestTable_FinishFixesMetrics(t *testing.T) {
	ass := assert.New(t)
	table, err := NewTable([]requests.Job{
		{ProcessId: 1, ArrivalTime: 2, BurstTime: 3},
	})
	ass.NoError(err)
	table.Admit(2)
	p := table.Get(1)
	table.Dispatch(p, 4)
	p.RemainingTime = 0
	table.Finish(p, 7)

	ass.Equal(StateTerminated, p.State)
	ass.Equal(7, p.CompletionTime)
	ass.Equal(5, p.TurnaroundTime)
	ass.Equal(2, p.WaitingTime)
	ass.True(table.AllTerminated())
	ass.Len(table.Terminated(), 1)
}
