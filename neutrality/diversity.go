package neutrality

import (
	"log"

	"github.com/carbocation/pfx"

	"github.com/variomics/popgen"
)

// Heterozygosity is the sample-size-corrected expected heterozygosity for a
// marker with two supplied allele frequencies:
//
//	n * (1 - (freq1^2 + freq2^2)) / (n - 1)
//
// It is the caller's responsibility to pass frequencies that are valid
// fractions; values above 1 draw a logged warning but the computation
// proceeds with whatever was given. A sample size of 1 divides by zero.
func Heterozygosity(sampleSize int, freq1, freq2 float64) float64 {
	if freq1 > 1 || freq2 > 1 {
		log.Printf("neutrality: heterozygosity called with frequency above 1 (%f, %f)", freq1, freq2)
	}

	n := float64(sampleSize)
	sumsq := freq1*freq1 + freq2*freq2

	return n * (1 - sumsq) / (n - 1)
}

// HeterozygosityBiallelic is Heterozygosity with the second frequency
// implied as 1 - freq1.
func HeterozygosityBiallelic(sampleSize int, freq1 float64) float64 {
	return Heterozygosity(sampleSize, freq1, 1-freq1)
}

// Pi is the nucleotide diversity of the sample: per-marker expected
// heterozygosity summed across all markers. At each marker the allele
// frequency table is walked in lexicographic allele order and
// Heterozygosity is accumulated for each adjacent pair of alleles. For
// biallelic markers this is the usual pairwise diversity; for markers with
// three or more alleles only consecutive pairs in table order contribute,
// not all pairs. That traversal reproduces the classical implementations of
// this statistic and is kept deliberately; see PiAllPairs for the
// generalized form.
func Pi(g *popgen.Group) (float64, error) {
	return pi(g, adjacentPairs)
}

// PiPerSite is Pi divided by the number of sites surveyed, giving per-site
// diversity. A zero numSites returns the undivided sum.
func PiPerSite(g *popgen.Group, numSites int) (float64, error) {
	sum, err := Pi(g)
	if err != nil {
		return 0, err
	}

	if numSites != 0 {
		sum /= float64(numSites)
	}

	return sum, nil
}

// PiAllPairs is the generalization of Pi that accumulates heterozygosity
// over every unordered pair of alleles at a marker rather than only
// adjacent pairs in table order. It differs from Pi only at markers with
// three or more alleles.
func PiAllPairs(g *popgen.Group) (float64, error) {
	return pi(g, allPairs)
}

type pairTraversal int

const (
	adjacentPairs pairTraversal = iota
	allPairs
)

func pi(g *popgen.Group, traversal pairTraversal) (float64, error) {
	sum := 0.0

	for _, marker := range g.MarkerNames() {
		freqs, err := g.AlleleFrequencies(marker)
		if err != nil {
			return 0, pfx.Err(err)
		}

		alleles := popgen.SortedAlleles(freqs)

		switch traversal {
		case adjacentPairs:
			for i := 0; i+1 < len(alleles); i++ {
				sum += Heterozygosity(g.SampleSize(), freqs[alleles[i]], freqs[alleles[i+1]])
			}
		case allPairs:
			for i := 0; i < len(alleles); i++ {
				for j := i + 1; j < len(alleles); j++ {
					sum += Heterozygosity(g.SampleSize(), freqs[alleles[i]], freqs[alleles[j]])
				}
			}
		}
	}

	return sum, nil
}

// Theta is Watterson's estimator of the population mutation rate from an
// explicit sample size and segregating site count:
//
//	S / a1, with a1 = sum over k in [1, n-1] of 1/k
//
// A sample size below 2 makes a1 zero and the result non-finite.
func Theta(sampleSize int, segSites float64) float64 {
	return segSites / harmonicSum(sampleSize-1)
}

// ThetaFrom derives the segregating site count from the sample and applies
// Watterson's estimator. When totalSites is non-zero the count is first
// divided by it, yielding per-site theta.
func ThetaFrom(g *popgen.Group, totalSites int) (float64, error) {
	segSites, err := SegregatingSites(g)
	if err != nil {
		return 0, err
	}

	s := float64(segSites)
	if totalSites != 0 {
		s /= float64(totalSites)
	}

	return Theta(g.SampleSize(), s), nil
}
