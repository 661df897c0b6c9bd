package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
)

var titles = map[schedulers.Algorithm]string{
	schedulers.FirstComeFirstServe: "First-come, first-serve",
	schedulers.ShortestJobFirst:    "Shortest-job-first",
	schedulers.Priority:            "Priority",
	schedulers.RoundRobin:          "Round-robin",
}

func Title(algorithm schedulers.Algorithm) string {
	if title, ok := titles[algorithm]; ok {
		return title
	}
	return string(algorithm)
}

// Simulation writes the report of every algorithm present in sim, in the
// usual algorithm order.
func Simulation(w io.Writer, sim responses.SimulationResponse) {
	for _, algorithm := range schedulers.Algorithms {
		report, ok := sim.Results[string(algorithm)]
		if !ok {
			continue
		}
		title := Title(algorithm)
		if algorithm == schedulers.RoundRobin {
			title = fmt.Sprintf("%s (quantum %d)", title, sim.TimeQuantum)
		}
		Schedule(w, title, report)
	}
}

// Schedule writes a title, the Gantt chart and the process table.
func Schedule(w io.Writer, title string, report responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, report.GanttChart)
	outputSchedule(w, report)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []core.GanttEntry) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(gantt) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		label := gantt[i].PID
		if gantt[i].Idle {
			label = "idle"
		}
		padding := strings.Repeat(" ", max(8-len(label), 0)/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, gantt[i].Start, "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, gantt[i].End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, report responses.ScheduleResponse) {
	rows := make([][]string, 0, len(report.Details))
	for _, p := range report.Details {
		rows = append(rows, []string{
			p.ProcessId,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnAroundTime),
			fmt.Sprint(p.FinishTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Response", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", report.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", report.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", report.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", report.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%% (idle %d of %d)\n\n", report.CpuUtilization, report.IdleTime, report.TotalTime)
}
