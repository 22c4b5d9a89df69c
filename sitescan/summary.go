package sitescan

import (
	"fmt"

	"github.com/carbocation/pfx"
	montanaflynn "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of one statistic across a scan's
// windows.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

// Describe summarizes a series of per-window values, e.g. the output of
// TajimaDSeries. The standard deviation is the sample (n-1) form and is NaN
// for a single-window series.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("sitescan: no values to summarize")
	}

	mean, stddev := stat.MeanStdDev(values, nil)

	median, err := montanaflynn.Median(values)
	if err != nil {
		return Summary{}, pfx.Err(err)
	}

	min, err := montanaflynn.Min(values)
	if err != nil {
		return Summary{}, pfx.Err(err)
	}

	max, err := montanaflynn.Max(values)
	if err != nil {
		return Summary{}, pfx.Err(err)
	}

	return Summary{
		N:      len(values),
		Mean:   mean,
		StdDev: stddev,
		Median: median,
		Min:    min,
		Max:    max,
	}, nil
}
