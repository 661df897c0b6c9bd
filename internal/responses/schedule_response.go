package responses

import "cpu-scheduler-simulator/internal/core"

type ProcessResponse struct {
	ProcessId      string `json:"pid"`
	ArrivalTime    int    `json:"arrival"`
	BurstTime      int    `json:"burst"`
	Priority       int    `json:"priority"`
	StartTime      int    `json:"start"`
	FinishTime     int    `json:"finish"`
	ResponseTime   int    `json:"response"`
	TurnAroundTime int    `json:"turnaround"`
	WaitingTime    int    `json:"waiting"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting"`
	AverageResponseTime   float64           `json:"average_response"`
	AverageTurnAroundTime float64           `json:"average_turnaround"`
	CpuUtilization        float64           `json:"utilization"`
	CpuThroughput         float64           `json:"throughput"`
	Details               []ProcessResponse `json:"processes"`
	GanttChart            []core.GanttEntry `json:"gantt_chart"`
}

// SimulationResponse holds one report per algorithm, keyed by algorithm name.
type SimulationResponse struct {
	TimeQuantum int                         `json:"time_quantum"`
	Results     map[string]ScheduleResponse `json:"results"`
}
