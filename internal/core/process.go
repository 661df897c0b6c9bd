package core

import (
	"errors"
	"fmt"
)

var ErrInvalidProcess = errors.New("invalid process")

// Process is a simulated job. The first four fields are inputs, the rest are
// filled in by a scheduling policy. It holds no references, so a plain copy
// is an independent process.
type Process struct {
	PID         string
	ArrivalTime int
	BurstTime   int
	Priority    int

	RemainingTime  int
	StartTime      int
	FinishTime     int
	WaitingTime    int
	TurnaroundTime int
}

func NewProcess(pid string, arrivalTime, burstTime, priority int) Process {
	return Process{
		PID:           pid,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Priority:      priority,
		RemainingTime: burstTime,
		StartTime:     -1,
	}
}

func (p *Process) IsComplete() bool {
	return p.RemainingTime == 0
}

// Reset clears everything a previous run wrote.
func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.StartTime = -1
	p.FinishTime = 0
	p.WaitingTime = 0
	p.TurnaroundTime = 0
}

// CloneAll returns a fresh, reset copy of processes in the same order.
func CloneAll(processes []Process) []Process {
	clones := make([]Process, len(processes))
	copy(clones, processes)
	for i := range clones {
		clones[i].Reset()
	}
	return clones
}

// Validate checks the fields a policy relies on: pids are unique, arrivals
// are not negative and every process needs at least one unit of CPU time.
func Validate(processes []Process) error {
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if p.PID == "" {
			return fmt.Errorf("%w: empty pid", ErrInvalidProcess)
		}
		if _, ok := seen[p.PID]; ok {
			return fmt.Errorf("%w: duplicate pid %q", ErrInvalidProcess, p.PID)
		}
		seen[p.PID] = struct{}{}

		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %q has negative arrival time %d", ErrInvalidProcess, p.PID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: pid %q has non-positive burst time %d", ErrInvalidProcess, p.PID, p.BurstTime)
		}
	}
	return nil
}
