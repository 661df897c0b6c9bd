package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler-simulator/internal/responses"
)

func TestCalculateAverage(t *testing.T) {
	waiting, response, turnaround := CalculateAverage([]responses.ProcessResponse{
		{WaitingTime: 0, ResponseTime: 0, TurnAroundTime: 5},
		{WaitingTime: 4, ResponseTime: 4, TurnAroundTime: 7},
		{WaitingTime: 1, ResponseTime: 0, TurnAroundTime: 2},
	})

	assert.Equal(t, 1.67, waiting)
	assert.Equal(t, 1.33, response)
	assert.Equal(t, 4.67, turnaround)
}

func TestCalculateAverageEmpty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)

	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 40.0, Percentage(2, 5))
	assert.Equal(t, 66.67, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(3, 3))
	assert.Zero(t, Percentage(0, 0))
	assert.Zero(t, Percentage(1, -1))
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0.25, Rate(2, 8))
	assert.Zero(t, Rate(3, 0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 7.75, Round2(7.75))
	assert.Equal(t, 0.33, Round2(1.0/3))
	assert.Equal(t, 14.29, Round2(14.2857))
	assert.Equal(t, 0.12, Round2(1.0/8))
	assert.Equal(t, 0.38, Round2(3.0/8))
	assert.Equal(t, 2.62, Round2(2.625))
}
