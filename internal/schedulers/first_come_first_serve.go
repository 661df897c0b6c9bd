package schedulers

import (
	"log/slog"
	"sort"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Processes arriving at the same time keep their submission order.
func ScheduleFirstComeFirstServe(processes []core.Process) responses.ScheduleResponse {
	slog.Debug("running fcfs algorithm", "processes", len(processes))

	// sort jobs by arrival time
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})

	cpu := core.NewCPU()
	for i := range processes {
		cpu.IdleUntil(processes[i].ArrivalTime)
		cpu.Execute(&processes[i], processes[i].BurstTime)
	}

	return generateResponse(FirstComeFirstServe, processes, cpu)
}
