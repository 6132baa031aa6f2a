package responses

type ProcessResponse struct {
	ProcessId      int    `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	State          string `json:"state"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type SliceResponse struct {
	Start     int `json:"start"`
	ProcessId int `json:"process_id"`
	Duration  int `json:"duration"`
}

type ScheduleResponse struct {
	Algorithm             string  `json:"algorithm"`
	TotalTime             int     `json:"total_time"`
	IdleTime              int     `json:"idle_time"`
	ContextSwitches       int     `json:"context_switches"`
	Throughput            int     `json:"throughput"`
	CpuUtilization        float64 `json:"cpu_utilization"`
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	AverageTurnAroundTime float64 `json:"average_turn_around_time"`
	// NoData is set when no process completed, e.g. a run cancelled before
	// the first completion. Averages and utilization are zero in that case.
	NoData       bool              `json:"no_data,omitempty"`
	Timeline     []SliceResponse   `json:"timeline"`
	QueueSamples []int             `json:"queue_samples"`
	Details      []ProcessResponse `json:"details"`
}

type WorkloadResponse struct {
	Seed int64         `json:"seed"`
	Jobs []WorkloadJob `json:"jobs"`
}

type WorkloadJob struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}
