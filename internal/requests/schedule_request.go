package requests

import "cpu-scheduler-simulator/internal/core"

type Job struct {
	ProcessId   string `json:"pid"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum *int  `json:"time_quantum"`
}

// Quantum returns the requested time quantum, or fallback when the request
// did not set one. An explicit zero is returned as is.
func (r *ScheduleRequests) Quantum(fallback int) int {
	if r.TimeQuantum == nil {
		return fallback
	}
	return *r.TimeQuantum
}

// Processes converts the jobs into validated processes, keeping their order.
func (r *ScheduleRequests) Processes() ([]core.Process, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	if err := core.Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}
