package schedulers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

// job is shorthand for test inputs: pid, arrival, burst, priority.
type job struct {
	pid                      string
	arrival, burst, priority int
}

func processesOf(jobs ...job) []core.Process {
	processes := make([]core.Process, 0, len(jobs))
	for _, j := range jobs {
		processes = append(processes, core.NewProcess(j.pid, j.arrival, j.burst, j.priority))
	}
	return processes
}

func run(pid string, start, end int) core.GanttEntry {
	return core.GanttEntry{PID: pid, Start: start, End: end}
}

func idle(start, end int) core.GanttEntry {
	return core.GanttEntry{Idle: true, Start: start, End: end}
}

func detailsByPID(report responses.ScheduleResponse) map[string]responses.ProcessResponse {
	details := make(map[string]responses.ProcessResponse, len(report.Details))
	for _, d := range report.Details {
		details[d.ProcessId] = d
	}
	return details
}

// assertValidSchedule checks the properties every report must have,
// whatever the algorithm.
func assertValidSchedule(t *testing.T, input []core.Process, report responses.ScheduleResponse) {
	t.Helper()
	require.Len(t, report.Details, len(input))

	var totalBurst int
	for _, p := range input {
		totalBurst += p.BurstTime
	}

	var busy int
	for i, entry := range report.GanttChart {
		assert.Less(t, entry.Start, entry.End, "entry %d", i)
		if i == 0 {
			assert.Equal(t, 0, entry.Start)
		} else {
			assert.Equal(t, report.GanttChart[i-1].End, entry.Start, "entry %d", i)
		}
		if !entry.Idle {
			assert.NotEmpty(t, entry.PID)
			busy += entry.Duration()
		}
	}
	assert.Equal(t, totalBurst, busy)
	if len(report.GanttChart) > 0 {
		assert.Equal(t, report.TotalTime, report.GanttChart[len(report.GanttChart)-1].End)
	}

	for _, d := range report.Details {
		assert.Equal(t, d.FinishTime-d.ArrivalTime, d.TurnAroundTime, d.ProcessId)
		assert.Equal(t, d.TurnAroundTime-d.BurstTime, d.WaitingTime, d.ProcessId)
		assert.GreaterOrEqual(t, d.WaitingTime, 0, d.ProcessId)
		assert.GreaterOrEqual(t, d.ResponseTime, 0, d.ProcessId)
		assert.GreaterOrEqual(t, d.StartTime, d.ArrivalTime, d.ProcessId)
	}
	assert.True(t, sort.SliceIsSorted(report.Details, func(i, j int) bool {
		return report.Details[i].ProcessId < report.Details[j].ProcessId
	}))

	assert.GreaterOrEqual(t, report.CpuUtilization, 0.0)
	assert.LessOrEqual(t, report.CpuUtilization, 100.0)
}
