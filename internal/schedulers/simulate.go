package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "FCFS"
	ShortestJobFirst    Algorithm = "SJF"
	Priority            Algorithm = "Priority"
	RoundRobin          Algorithm = "RR"
)

// Algorithms lists every supported algorithm in report order.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin}

var (
	ErrInvalidTimeQuantum = errors.New("time quantum must be positive")
	ErrUnknownAlgorithm   = errors.New("unknown scheduling algorithm")
)

// Schedule runs one algorithm on its own copy of processes; the caller's
// slice is left untouched. timeQuantum is only read by RoundRobin.
func Schedule(algorithm Algorithm, processes []core.Process, timeQuantum int) (responses.ScheduleResponse, error) {
	owned := core.CloneAll(processes)

	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(owned), nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(owned), nil
	case Priority:
		return SchedulePriority(owned), nil
	case RoundRobin:
		return ScheduleRoundRobin(owned, timeQuantum)
	default:
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// SimulateAll runs every algorithm on an independent copy of processes and
// collects the reports by algorithm name. The quantum is checked before any
// algorithm runs.
func SimulateAll(processes []core.Process, timeQuantum int) (responses.SimulationResponse, error) {
	if timeQuantum <= 0 {
		return responses.SimulationResponse{}, fmt.Errorf("%w: got %d", ErrInvalidTimeQuantum, timeQuantum)
	}

	var (
		wg      sync.WaitGroup
		results = make([]responses.ScheduleResponse, len(Algorithms))
		errs    = make([]error, len(Algorithms))
	)
	wg.Add(len(Algorithms))

	// the algorithms share nothing, so each one gets a goroutine
	for i, algorithm := range Algorithms {
		go func(i int, algorithm Algorithm) {
			defer wg.Done()
			results[i], errs[i] = Schedule(algorithm, processes, timeQuantum)
		}(i, algorithm)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return responses.SimulationResponse{}, err
	}

	response := responses.SimulationResponse{
		TimeQuantum: timeQuantum,
		Results:     make(map[string]responses.ScheduleResponse, len(Algorithms)),
	}
	for i, algorithm := range Algorithms {
		response.Results[string(algorithm)] = results[i]
	}

	slog.Info("simulation finished", "processes", len(processes), "time_quantum", timeQuantum)
	return response, nil
}
