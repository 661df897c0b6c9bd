package schedulers

import (
	"fmt"
	"log/slog"
	"sort"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

// processQueue is a FIFO of indexes into the process slice.
type processQueue struct {
	queue []int
}

func (p *processQueue) AddToEnd(idx int) {
	p.queue = append(p.queue, idx)
}

func (p *processQueue) RemoveFromTop() (int, bool) {
	if len(p.queue) > 0 {
		item := p.queue[0]
		p.queue = p.queue[1:]
		return item, true
	}
	return -1, false
}

func (p *processQueue) Empty() bool {
	return len(p.queue) == 0
}

// ScheduleRoundRobin gives each ready process at most timeQuantum units per
// turn. Processes arriving during a slice join the queue ahead of the
// process that was just preempted.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (responses.ScheduleResponse, error) {
	if timeQuantum <= 0 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: got %d", ErrInvalidTimeQuantum, timeQuantum)
	}
	slog.Debug("running roundRobin algorithm", "processes", len(processes), "time_quantum", timeQuantum)

	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})

	var (
		cpu   = core.NewCPU()
		ready = processQueue{}
		next  = 0
	)
	admit := func() {
		for next < len(processes) && processes[next].ArrivalTime <= cpu.Now() {
			ready.AddToEnd(next)
			next++
		}
	}

	admit()
	for !ready.Empty() || next < len(processes) {
		if ready.Empty() {
			cpu.IdleUntil(processes[next].ArrivalTime)
			admit()
		}

		idx, _ := ready.RemoveFromTop()
		process := &processes[idx]
		cpu.Execute(process, timeQuantum)

		admit()
		if !process.IsComplete() {
			slog.Debug("context switch", "pid", process.PID, "time", cpu.Now(), "remaining", process.RemainingTime)
			ready.AddToEnd(idx)
		}
	}

	response := generateResponse(RoundRobin, processes, cpu)
	response.TimeQuantum = timeQuantum
	return response, nil
}
