package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler-simulator/internal/core"
)

func TestSchedulePriority(t *testing.T) {
	input := processesOf(job{"P1", 0, 4, 3}, job{"P2", 1, 3, 1}, job{"P3", 2, 1, 2}, job{"P4", 3, 2, 1})

	report := SchedulePriority(core.CloneAll(input))

	assert.Equal(t, string(Priority), report.Algorithm)
	// P2 and P4 share priority 1; P2 arrived first
	assert.Equal(t, []core.GanttEntry{
		run("P1", 0, 4), run("P2", 4, 7), run("P4", 7, 9), run("P3", 9, 10),
	}, report.GanttChart)

	details := detailsByPID(report)
	assert.Equal(t, 0, details["P1"].WaitingTime)
	assert.Equal(t, 3, details["P2"].WaitingTime)
	assert.Equal(t, 7, details["P3"].WaitingTime)
	assert.Equal(t, 4, details["P4"].WaitingTime)
	assert.Equal(t, 3.5, report.AverageWaitingTime)
	assertValidSchedule(t, input, report)
}

func TestSchedulePriorityIgnoresBurst(t *testing.T) {
	input := processesOf(job{"Short", 0, 1, 5}, job{"Urgent", 0, 6, 0})

	report := SchedulePriority(core.CloneAll(input))

	assert.Equal(t, []core.GanttEntry{run("Urgent", 0, 6), run("Short", 6, 7)}, report.GanttChart)
}

func TestSchedulePriorityIdle(t *testing.T) {
	input := processesOf(job{"P1", 2, 1, 0})

	report := SchedulePriority(core.CloneAll(input))

	assert.Equal(t, []core.GanttEntry{idle(0, 1), idle(1, 2), run("P1", 2, 3)}, report.GanttChart)
	assert.Equal(t, 33.33, report.CpuUtilization)
}
