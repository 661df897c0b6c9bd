package util

import (
	"math"

	"cpu-scheduler-simulator/internal/responses"
)

// CalculateAverage returns zeroes for an empty slice.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(proccessDetails) == 0 {
		return 0, 0, 0
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		responseTimeSum += float64(proccess.ResponseTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = Round2(waitingTimeSum / proccessCount)
	averageResponseTime = Round2(responseTimeSum / proccessCount)
	averageTimeAroundTime = Round2(turnAroundTimeSum / proccessCount)
	return
}

// Round2 rounds to two decimal places, halves to even.
func Round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// Percentage returns part/total*100 rounded to two decimals, or 0 when total
// is not positive.
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(float64(part) / float64(total) * 100)
}

// Rate returns count/total rounded to two decimals, or 0 when total is not
// positive.
func Rate(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(float64(count) / float64(total))
}
