package neutrality

import "github.com/BenLubar/memoize"

// The neutrality tests repeatedly need the harmonic sums a1 = sum(1/k) and
// a2 = sum(1/k^2) for k up to one less than the sample size. They depend
// only on their integer argument, so they are memoized; genome-wide scans
// call the tests once per window with the same sample size throughout.
var memoizedHarmonic = memoize.Memoize(harmonic)
var memoizedHarmonicSquared = memoize.Memoize(harmonicSquared)

func harmonic(m int) (sum float64) {
	for k := 1; k <= m; k++ {
		sum += 1 / float64(k)
	}

	return sum
}

func harmonicSquared(m int) (sum float64) {
	for k := 1; k <= m; k++ {
		sum += 1 / (float64(k) * float64(k))
	}

	return sum
}

func harmonicSum(m int) float64 {
	return memoizedHarmonic.(func(int) float64)(m)
}

func harmonicSquaredSum(m int) float64 {
	return memoizedHarmonicSquared.(func(int) float64)(m)
}
