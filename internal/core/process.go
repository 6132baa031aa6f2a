package core

import (
	"errors"
	"fmt"
	"sort"

	"cpusim/internal/requests"
)

// ErrConfiguration marks input that is rejected before any simulation state
// is created. Handlers map it to a client error.
var ErrConfiguration = errors.New("invalid configuration")

type State int

const (
	StateNew State = iota
	StateReady
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateReady:
		return "READY"
	case StateRunning:
		return "RUNNING"
	case StateTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Process is the record for one simulated process. A Process belongs to the
// Table that created it and is mutated in place by the scheduler loop; the
// analytics layer only reads it after the run.
type Process struct {
	Pid            int
	ArrivalTime    int
	BurstTime      int
	Priority       int
	RemainingTime  int
	StartTime      int // -1 until the first dispatch
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
	State          State
}

// Table is the arena holding every Process of one run, indexed by pid.
// Schedulers hold *Process references into the arena, so a preempted process
// re-entering a queue is always the same record, never a diverging copy.
type Table struct {
	procs   []*Process // ordered by (arrival time, pid)
	byPid   map[int]*Process
	pending int
}

// NewTable validates the submitted jobs and builds the arena. Validation
// happens before any simulation state exists: a bad job set is rejected
// whole, never partially applied.
func NewTable(jobs []requests.Job) (*Table, error) {
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: at least one process is required", ErrConfiguration)
	}

	table := &Table{
		procs: make([]*Process, 0, len(jobs)),
		byPid: make(map[int]*Process, len(jobs)),
	}
	for _, job := range jobs {
		if job.BurstTime <= 0 {
			return nil, fmt.Errorf("%w: process %d has non-positive burst time %d", ErrConfiguration, job.ProcessId, job.BurstTime)
		}
		if job.ArrivalTime < 0 {
			return nil, fmt.Errorf("%w: process %d has negative arrival time %d", ErrConfiguration, job.ProcessId, job.ArrivalTime)
		}
		if _, ok := table.byPid[job.ProcessId]; ok {
			return nil, fmt.Errorf("%w: duplicate process id %d", ErrConfiguration, job.ProcessId)
		}
		proc := &Process{
			Pid:           job.ProcessId,
			ArrivalTime:   job.ArrivalTime,
			BurstTime:     job.BurstTime,
			Priority:      job.Priority,
			RemainingTime: job.BurstTime,
			StartTime:     -1,
			State:         StateNew,
		}
		table.procs = append(table.procs, proc)
		table.byPid[proc.Pid] = proc
	}

	sort.SliceStable(table.procs, func(i, j int) bool {
		if table.procs[i].ArrivalTime != table.procs[j].ArrivalTime {
			return table.procs[i].ArrivalTime < table.procs[j].ArrivalTime
		}
		return table.procs[i].Pid < table.procs[j].Pid
	})
	table.pending = len(table.procs)
	return table, nil
}

// Admit moves every NEW process with arrival_time <= clock to READY and
// returns the newly admitted processes in (arrival time, pid) order. The
// NEW -> READY transition happens exactly once per process.
func (t *Table) Admit(clock int) []*Process {
	var admitted []*Process
	for _, p := range t.procs {
		if p.ArrivalTime > clock {
			break
		}
		if p.State == StateNew {
			p.State = StateReady
			admitted = append(admitted, p)
		}
	}
	return admitted
}

// Ready returns every admitted, unfinished process in (arrival time, pid)
// order. The currently running process is included so preemptive policies
// can compare it against the rest of the ready set.
func (t *Table) Ready() []*Process {
	ready := make([]*Process, 0, len(t.procs))
	for _, p := range t.procs {
		if p.State == StateReady || p.State == StateRunning {
			ready = append(ready, p)
		}
	}
	return ready
}

// Dispatch hands the CPU to p at the given clock. Start and response times
// are fixed on the first dispatch only, regardless of later preemptions.
func (t *Table) Dispatch(p *Process, clock int) {
	if p.StartTime < 0 {
		p.StartTime = clock
		p.ResponseTime = clock - p.ArrivalTime
	}
	p.State = StateRunning
}

// Preempt returns a running process to the ready set.
func (t *Table) Preempt(p *Process) {
	p.State = StateReady
}

// Finish terminates p at the given clock and fixes its completion metrics.
// A terminated process never re-enters scheduling.
func (t *Table) Finish(p *Process, clock int) {
	p.CompletionTime = clock
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.State = StateTerminated
	t.pending--
}

// AllTerminated reports whether the run is over.
func (t *Table) AllTerminated() bool {
	return t.pending == 0
}

// Get returns the process with the given pid, or nil.
func (t *Table) Get(pid int) *Process {
	return t.byPid[pid]
}

// All returns every process ordered by pid, for reporting.
func (t *Table) All() []*Process {
	all := make([]*Process, len(t.procs))
	copy(all, t.procs)
	sort.Slice(all, func(i, j int) bool { return all[i].Pid < all[j].Pid })
	return all
}

// Terminated returns the completed processes ordered by pid.
func (t *Table) Terminated() []*Process {
	var done []*Process
	for _, p := range t.All() {
		if p.State == StateTerminated {
			done = append(done, p)
		}
	}
	return done
}
