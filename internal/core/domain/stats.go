package domain

import (
	"math"
	"slices"
	"time"
)

// Percentiles is a nearest-rank summary of a duration distribution.
type Percentiles struct {
	Count int
	Min   time.Duration
	P50   time.Duration
	P90   time.Duration
	P99   time.Duration
	Max   time.Duration
}

// ComputePercentiles summarizes samples. An empty input yields the zero value.
func ComputePercentiles(samples []time.Duration) Percentiles {
	if len(samples) == 0 {
		return Percentiles{}
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	return Percentiles{
		Count: len(sorted),
		Min:   sorted[0],
		P50:   nearestRank(sorted, 50),
		P90:   nearestRank(sorted, 90),
		P99:   nearestRank(sorted, 99),
		Max:   sorted[len(sorted)-1],
	}
}

func nearestRank(sorted []time.Duration, p float64) time.Duration {
	rank := int(math.Ceil(p * float64(len(sorted)) / 100))
	rank = max(rank, 1)
	return sorted[min(rank, len(sorted))-1]
}

const bytesPerMB = 1024 * 1024

// Throughput returns MB/s for size bytes processed in d. Non-positive
// durations yield zero.
func Throughput(size int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(size) / bytesPerMB / d.Seconds()
}
