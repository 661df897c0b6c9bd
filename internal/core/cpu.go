package core

import "log/slog"

// GanttEntry is one interval of the CPU timeline. Idle entries carry no pid.
type GanttEntry struct {
	PID   string `json:"pid,omitempty"`
	Idle  bool   `json:"idle"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func (e GanttEntry) Duration() int {
	return e.End - e.Start
}

// CPU is a single simulated core. Its clock only moves forward, through
// Execute and Idle, and every move is recorded on the timeline.
type CPU struct {
	clock    int
	timeline []GanttEntry
}

func NewCPU() *CPU {
	return &CPU{timeline: make([]GanttEntry, 0)}
}

func (c *CPU) Now() int {
	return c.clock
}

// Execute runs p for at most duration units, or until it completes.
// It returns the time actually spent.
func (c *CPU) Execute(p *Process, duration int) int {
	if duration > p.RemainingTime {
		duration = p.RemainingTime
	}
	if duration <= 0 {
		return 0
	}

	if p.StartTime < 0 {
		p.StartTime = c.clock
	}
	start := c.clock
	c.clock += duration
	p.RemainingTime -= duration
	if p.IsComplete() {
		p.FinishTime = c.clock
	}

	c.timeline = append(c.timeline, GanttEntry{PID: p.PID, Start: start, End: c.clock})
	slog.Debug("cpu executed process", "pid", p.PID, "start", start, "end", c.clock, "remaining", p.RemainingTime)
	return duration
}

func (c *CPU) Idle(duration int) {
	if duration <= 0 {
		return
	}
	start := c.clock
	c.clock += duration
	c.timeline = append(c.timeline, GanttEntry{Idle: true, Start: start, End: c.clock})
}

// IdleUntil leaves the CPU idle up to t. It does nothing if t is not ahead
// of the clock.
func (c *CPU) IdleUntil(t int) {
	c.Idle(t - c.clock)
}

// Timeline returns a copy of the recorded Gantt entries.
func (c *CPU) Timeline() []GanttEntry {
	timeline := make([]GanttEntry, len(c.timeline))
	copy(timeline, c.timeline)
	return timeline
}
