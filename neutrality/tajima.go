package neutrality

import (
	"fmt"
	"math"

	"github.com/variomics/popgen"
)

// TajimaD computes Tajima's D for the sample: the difference between the
// diversity-based and segregating-site-based estimates of the population
// mutation rate, normalized by its approximate standard deviation (Tajima
// 1989, eq. 38). Negative values indicate an excess of rare variants,
// positive values an excess of intermediate-frequency variants. A sample
// with no segregating sites leaves the test undefined and returns
// ErrNoSegregatingSites.
func TajimaD(g *popgen.Group) (float64, error) {
	segSites, err := SegregatingSites(g)
	if err != nil {
		return 0, err
	}

	if segSites <= 0 {
		return 0, fmt.Errorf("tajima's D: %w", ErrNoSegregatingSites)
	}

	piSum, err := Pi(g)
	if err != nil {
		return 0, err
	}

	return tajimaD(g.SampleSize(), segSites, piSum), nil
}

// tajimaD applies Tajima (1989) equations 32-38 to the summary counts.
func tajimaD(sampleSize, segSites int, piSum float64) float64 {
	n := float64(sampleSize)
	s := float64(segSites)

	a1 := harmonicSum(sampleSize - 1)
	a2 := harmonicSquaredSum(sampleSize - 1)

	b1 := (n + 1) / (3 * (n - 1))
	b2 := 2 * (n*n + n + 3) / (9 * n * (n - 1))

	c1 := b1 - 1/a1
	c2 := b2 - (n+2)/(a1*n) + a2/(a1*a1)

	e1 := c1 / a1
	e2 := c2 / (a1*a1 + a2)

	return (piSum - s/a1) / math.Sqrt(e1*s+e2*s*(s-1))
}
