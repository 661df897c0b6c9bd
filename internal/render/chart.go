package render

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
)

const barWidth = vg.Length(14)

// Chart draws average turnaround, waiting and response time of every
// algorithm as grouped bars and returns the image encoded as PNG.
func Chart(sim responses.SimulationResponse) ([]byte, error) {
	var (
		names      []string
		turnaround plotter.Values
		waiting    plotter.Values
		response   plotter.Values
	)
	for _, algorithm := range schedulers.Algorithms {
		report, ok := sim.Results[string(algorithm)]
		if !ok {
			continue
		}
		names = append(names, string(algorithm))
		turnaround = append(turnaround, report.AverageTurnAroundTime)
		waiting = append(waiting, report.AverageWaitingTime)
		response = append(response, report.AverageResponseTime)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no results to chart")
	}

	p := plot.New()
	p.Title.Text = "Scheduling metrics"
	p.Y.Label.Text = "Time units"
	p.X.Label.Text = "Algorithm"

	series := []struct {
		label  string
		values plotter.Values
	}{
		{"Avg turnaround", turnaround},
		{"Avg waiting", waiting},
		{"Avg response", response},
	}
	for i, s := range series {
		bars, err := plotter.NewBarChart(s.values, barWidth)
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(i-1) * barWidth

		p.Add(bars)
		p.Legend.Add(s.label, bars)
	}
	p.Legend.Top = true
	p.NominalX(names...)

	writer, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
