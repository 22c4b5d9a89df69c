// Package neutrality computes classical population-genetics summary
// statistics and neutrality tests from genotyped samples: segregating-site
// and singleton counts, external (derived) mutation counts, expected
// heterozygosity, nucleotide diversity pi, Watterson's theta, Tajima's D
// (Tajima 1989, Genetics 123:585-595), and Fu and Li's D, D*, F, and F*
// (Fu and Li 1993, Genetics 133:693-709, with the corrected coefficients of
// Simonsen, Churchill and Aquadro 1995).
//
// Every statistic is a pure function of a resolved popgen.Group; there is
// no internal state. Degenerate inputs that the formulas do not naturally
// avoid (sample sizes below 3, zero denominators) are not intercepted and
// can yield Inf or NaN; callers are responsible for validating sample size
// before calling.
package neutrality

import (
	"errors"
	"log"
)

// Sentinel errors for conditions the statistics detect themselves. They are
// wrapped with call-site context, so test with errors.Is.
var (
	// ErrMissingOutgroup is returned by the Fu and Li D and F tests when no
	// outgroup sample or external mutation count was supplied.
	ErrMissingOutgroup = errors.New("outgroup required but not supplied")

	// ErrInsufficientData is returned when a statistic needs raw genotype
	// calls but the sample only carries pre-aggregated frequencies.
	ErrInsufficientData = errors.New("genotype calls required but only frequencies are available")

	// ErrNoSegregatingSites is returned by the neutrality tests when the
	// sample has no segregating sites, leaving the test undefined.
	ErrNoSegregatingSites = errors.New("no segregating sites in sample")
)

// OrZero converts a statistic's error into the zero sentinel, logging the
// reason. It preserves the classical warn-and-return-zero behavior for
// callers that prefer it over distinguishing errors; note that a zero from
// OrZero is indistinguishable from a genuinely zero statistic.
func OrZero(v float64, err error) float64 {
	if err != nil {
		log.Println("neutrality:", err)
		return 0
	}

	return v
}

// OrZeroCount is OrZero for the integer-valued counting statistics.
func OrZeroCount(n int, err error) int {
	if err != nil {
		log.Println("neutrality:", err)
		return 0
	}

	return n
}
