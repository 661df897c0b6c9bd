package schedulers

import (
	"log/slog"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

// SchedulePriority is non-preemptive; a lower priority value runs first.
func SchedulePriority(processes []core.Process) responses.ScheduleResponse {
	slog.Debug("running priority algorithm", "processes", len(processes))

	cpu := runNonPreemptive(processes, func(p *core.Process) int {
		return p.Priority
	})
	return generateResponse(Priority, processes, cpu)
}
