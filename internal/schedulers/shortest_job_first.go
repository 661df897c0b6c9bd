package schedulers

import (
	"log/slog"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

// ScheduleShortestJobFirst is non-preemptive: whenever the CPU is free it
// picks the ready process with the smallest burst time.
func ScheduleShortestJobFirst(processes []core.Process) responses.ScheduleResponse {
	slog.Debug("running sjf algorithm", "processes", len(processes))

	cpu := runNonPreemptive(processes, func(p *core.Process) int {
		return p.BurstTime
	})
	return generateResponse(ShortestJobFirst, processes, cpu)
}

// runNonPreemptive dispatches the ready process with the smallest key until
// every process is complete. When nothing is ready the CPU idles for a
// single tick, so a gap shows up as a run of one-unit idle entries.
func runNonPreemptive(processes []core.Process, key func(*core.Process) int) *core.CPU {
	var (
		cpu         = core.NewCPU()
		completed   = 0
		isCompleted = make([]bool, len(processes))
	)

	for completed < len(processes) {
		idx := pickNext(processes, isCompleted, cpu.Now(), key)
		if idx == -1 {
			cpu.Idle(1)
			continue
		}

		cpu.Execute(&processes[idx], processes[idx].RemainingTime)
		isCompleted[idx] = true
		completed++
	}
	return cpu
}

// pickNext returns the index of the ready process with the smallest key,
// breaking ties by earlier arrival and then by position. It returns -1 if no
// process is ready at now.
func pickNext(processes []core.Process, isCompleted []bool, now int, key func(*core.Process) int) int {
	idx := -1
	for i := range processes {
		p := &processes[i]
		if isCompleted[i] || p.ArrivalTime > now {
			continue
		}
		if idx == -1 {
			idx = i
			continue
		}

		best := &processes[idx]
		if key(p) < key(best) || (key(p) == key(best) && p.ArrivalTime < best.ArrivalTime) {
			idx = i
		}
	}
	return idx
}
