package probe

import (
	"math"
	"time"
)

// TimeIt invokes fn repeats times and returns the mean and sample standard
// deviation of the per-call duration in milliseconds.
//
// The first call is included in the sample on purpose: the original demo
// this reproduces did the same, and for slow KDFs the warm-up effect is
// negligible next to the work itself. Standard deviation is 0 when fewer
// than two samples exist.
func TimeIt(fn func(), repeats int) (mean, stddev float64) {
	if repeats <= 0 {
		return 0, 0
	}

	samples := make([]float64, 0, repeats)
	for i := 0; i < repeats; i++ {
		start := time.Now()
		fn()
		samples = append(samples, float64(time.Since(start).Nanoseconds())/1e6)
	}

	for _, s := range samples {
		mean += s
	}
	mean /= float64(len(samples))

	if len(samples) < 2 {
		return mean, 0
	}
	var sumSq float64
	for _, s := range samples {
		d := s - mean
		sumSq += d * d
	}
	stddev = math.Sqrt(sumSq / float64(len(samples)-1))
	return mean, stddev
}
