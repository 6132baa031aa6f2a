package requests

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequest struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum applies to round robin only; 0 means "use the configured
	// default".
	TimeQuantum int `json:"time_quantum,omitempty"`
}

// WorkloadRequest describes a randomly generated demo job set. All ranges
// are inclusive.
type WorkloadRequest struct {
	Count       int   `json:"count"`
	ArrivalMin  int   `json:"arrival_min"`
	ArrivalMax  int   `json:"arrival_max"`
	BurstMin    int   `json:"burst_min"`
	BurstMax    int   `json:"burst_max"`
	PriorityMin int   `json:"priority_min"`
	PriorityMax int   `json:"priority_max"`
	Seed        int64 `json:"seed,omitempty"`
}
