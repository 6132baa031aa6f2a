package workload

import (
	"fmt"
	"math/rand"
	"time"

	"cpusim/internal/core"
	"cpusim/internal/requests"
)

// Generate produces a random demo job set. Pids are assigned 1..count. The
// seed makes a workload reproducible; pass 0 to get a fresh one. The engine
// treats generated jobs exactly like manually supplied ones.
func Generate(request requests.WorkloadRequest) ([]requests.Job, int64, error) {
	if err := validate(request); err != nil {
		return nil, 0, err
	}
	seed := request.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	jobs := make([]requests.Job, 0, request.Count)
	for i := 0; i < request.Count; i++ {
		jobs = append(jobs, requests.Job{
			ProcessId:   i + 1,
			ArrivalTime: between(rng, request.ArrivalMin, request.ArrivalMax),
			BurstTime:   between(rng, request.BurstMin, request.BurstMax),
			Priority:    between(rng, request.PriorityMin, request.PriorityMax),
		})
	}
	return jobs, seed, nil
}

func validate(request requests.WorkloadRequest) error {
	if request.Count < 1 {
		return fmt.Errorf("%w: process count must be at least 1, got %d", core.ErrConfiguration, request.Count)
	}
	if request.ArrivalMin < 0 {
		return fmt.Errorf("%w: arrival range must be non-negative, got min %d", core.ErrConfiguration, request.ArrivalMin)
	}
	if request.BurstMin < 1 {
		return fmt.Errorf("%w: burst range must start at 1 or above, got min %d", core.ErrConfiguration, request.BurstMin)
	}
	ranges := []struct {
		name     string
		min, max int
	}{
		{"arrival", request.ArrivalMin, request.ArrivalMax},
		{"burst", request.BurstMin, request.BurstMax},
		{"priority", request.PriorityMin, request.PriorityMax},
	}
	for _, r := range ranges {
		if r.min > r.max {
			return fmt.Errorf("%w: %s range min %d exceeds max %d", core.ErrConfiguration, r.name, r.min, r.max)
		}
	}
	return nil
}

func between(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}
