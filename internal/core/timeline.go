package core

// Slice is one scheduling decision: the selected process held the CPU from
// Start for Duration clock units. Slices are recorded un-merged; collapsing
// adjacent slices of the same process is a reporting concern.
type Slice struct {
	Start    int
	Pid      int
	Duration int
}

// Timeline accumulates the execution slices of one run plus a ready-queue
// length sample per clock advance and the total idle time.
type Timeline struct {
	Slices       []Slice
	QueueSamples []int
	IdleTime     int
}

func NewTimeline() *Timeline {
	return &Timeline{
		Slices:       make([]Slice, 0),
		QueueSamples: make([]int, 0),
	}
}

// Record appends one execution slice.
func (t *Timeline) Record(start, pid, duration int) {
	t.Slices = append(t.Slices, Slice{Start: start, Pid: pid, Duration: duration})
}

// Sample records the instantaneous ready-queue length. It is an
// observability signal only; no policy reads it back.
func (t *Timeline) Sample(queueLength int) {
	t.QueueSamples = append(t.QueueSamples, queueLength)
}

// MarkIdle accounts one clock unit during which no process was ready.
func (t *Timeline) MarkIdle() {
	t.IdleTime++
}

// BusyTime is the total recorded execution time.
func (t *Timeline) BusyTime() int {
	var busy int
	for _, s := range t.Slices {
		busy += s.Duration
	}
	return busy
}

// ElapsedTime is busy time plus idle time, i.e. the final clock value.
func (t *Timeline) ElapsedTime() int {
	return t.BusyTime() + t.IdleTime
}
