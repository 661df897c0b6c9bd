package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrMalformedRecord = errors.New("malformed process record")

const processTableFields = 4

// ParseProcessTable reads "pid,arrival_time,burst_time,priority" rows.
// Blank or whitespace-only lines are skipped, and so is a leading header row
// whose first field is "pid".
func ParseProcessTable(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	jobs := make([]Job, 0)
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		line, _ := reader.FieldPos(0)

		// lines holding only whitespace
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(record[0]), "pid") {
				continue
			}
		}
		if len(record) != processTableFields {
			return nil, fmt.Errorf("%w: line %d: expected %d fields, got %d", ErrMalformedRecord, line, processTableFields, len(record))
		}

		job, err := parseJob(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func parseJob(record []string) (Job, error) {
	var (
		job    = Job{ProcessId: strings.TrimSpace(record[0])}
		fields = []*int{&job.ArrivalTime, &job.BurstTime, &job.Priority}
		names  = []string{"arrival_time", "burst_time", "priority"}
	)
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(record[i+1]))
		if err != nil {
			return Job{}, fmt.Errorf("%s %q is not an integer", names[i], record[i+1])
		}
		*field = v
	}
	return job, nil
}
