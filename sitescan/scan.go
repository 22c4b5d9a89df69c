// Package sitescan computes neutrality statistics in sliding windows
// across an ordered run of markers, the usual way the statistics in the
// neutrality package are consumed genome-wide: a per-window series of pi,
// Watterson's theta, and Tajima's D, plus descriptive summaries of those
// series for spotting outlier regions.
package sitescan

import (
	"errors"
	"fmt"

	"github.com/variomics/popgen"
	"github.com/variomics/popgen/neutrality"
)

// Window holds the statistics computed over one contiguous run of markers.
// Start and End are half-open indices into the ordered marker list the scan
// was given.
type Window struct {
	Start   int
	End     int
	Markers []string

	SegregatingSites int
	Pi               float64
	Theta            float64
	TajimaD          float64
}

// Scan slides a window of the given size across the ordered marker list in
// increments of step and computes the per-window statistics from the
// sample. The final window may be shorter than size. An empty ordered list
// scans the group's own marker order. Windows with no segregating sites
// report a Tajima's D of zero, since the test is undefined there.
func Scan(g *popgen.Group, ordered []string, size, step int) ([]Window, error) {
	if size <= 0 || step <= 0 {
		return nil, fmt.Errorf("sitescan: window size %d and step %d must both be positive", size, step)
	}

	if len(ordered) == 0 {
		ordered = g.MarkerNames()
	}

	windows := make([]Window, 0, 1+len(ordered)/step)

	for start := 0; start < len(ordered); start += step {
		end := start + size
		if end > len(ordered) {
			end = len(ordered)
		}

		markers := ordered[start:end]
		sub := g.Restrict(markers)

		segSites, err := neutrality.SegregatingSites(sub)
		if err != nil {
			return nil, err
		}

		piSum, err := neutrality.Pi(sub)
		if err != nil {
			return nil, err
		}

		theta, err := neutrality.ThetaFrom(sub, 0)
		if err != nil {
			return nil, err
		}

		d, err := neutrality.TajimaD(sub)
		if errors.Is(err, neutrality.ErrNoSegregatingSites) {
			d = 0
		} else if err != nil {
			return nil, err
		}

		windows = append(windows, Window{
			Start:            start,
			End:              end,
			Markers:          markers,
			SegregatingSites: segSites,
			Pi:               piSum,
			Theta:            theta,
			TajimaD:          d,
		})

		if end == len(ordered) {
			break
		}
	}

	return windows, nil
}

// PiSeries extracts the per-window pi values in window order.
func PiSeries(windows []Window) []float64 {
	out := make([]float64, len(windows))
	for i, w := range windows {
		out[i] = w.Pi
	}

	return out
}

// ThetaSeries extracts the per-window theta values in window order.
func ThetaSeries(windows []Window) []float64 {
	out := make([]float64, len(windows))
	for i, w := range windows {
		out[i] = w.Theta
	}

	return out
}

// TajimaDSeries extracts the per-window Tajima's D values in window order.
func TajimaDSeries(windows []Window) []float64 {
	out := make([]float64, len(windows))
	for i, w := range windows {
		out[i] = w.TajimaD
	}

	return out
}
