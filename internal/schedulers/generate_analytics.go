package schedulers

import (
	"sort"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/util"
)

// CalculateMetrics fills in waiting and turnaround time on every process and
// builds the report for a finished schedule. Only those two fields of the
// processes are written; the timeline is copied as is.
func CalculateMetrics(processes []core.Process, gantt []core.GanttEntry, totalTime int) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(processes))
	for i := range processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(&processes[i]))
	}
	sort.SliceStable(proccessDetails, func(i, j int) bool {
		return proccessDetails[i].ProcessId < proccessDetails[j].ProcessId
	})

	var idleTime int
	for _, entry := range gantt {
		if entry.Idle {
			idleTime += entry.Duration()
		}
	}

	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	timeline := make([]core.GanttEntry, len(gantt))
	copy(timeline, gantt)

	return responses.ScheduleResponse{
		TotalTime:             totalTime,
		IdleTime:              idleTime,
		CpuUtilization:        util.Percentage(totalTime-idleTime, totalTime),
		CpuThroughput:         util.Rate(len(processes), totalTime),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
		GanttChart:            timeline,
	}
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	process.TurnaroundTime = process.FinishTime - process.ArrivalTime
	process.WaitingTime = process.TurnaroundTime - process.BurstTime

	var responseTime int
	if process.StartTime >= 0 {
		responseTime = process.StartTime - process.ArrivalTime
	}

	return responses.ProcessResponse{
		ProcessId:      process.PID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		StartTime:      process.StartTime,
		FinishTime:     process.FinishTime,
		ResponseTime:   responseTime,
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitingTime,
	}
}

func generateResponse(algorithm Algorithm, processes []core.Process, cpu *core.CPU) responses.ScheduleResponse {
	response := CalculateMetrics(processes, cpu.Timeline(), cpu.Now())
	response.Algorithm = string(algorithm)
	return response
}
