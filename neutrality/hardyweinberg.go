package neutrality

import (
	"fmt"
	"math"

	"github.com/variomics/popgen"
)

// HardyWeinbergChiSquare returns a chi square value (1 degree of freedom)
// for the departure of observed diploid genotype counts from the genotype
// frequencies expected under Hardy-Weinberg equilibrium, given the allele
// frequencies observed in the same sample. It is most often used to flag
// markers whose genotype calls are likely erroneous. homMajor, het, and
// homMinor are the observed homozygous-major, heterozygous, and
// homozygous-minor genotype counts.
func HardyWeinbergChiSquare(homMajor, het, homMinor float64) float64 {
	major := homMajor*2 + het
	minor := homMinor*2 + het

	// A marker that is not biallelic in this sample has expectation equal
	// to observation, so its departure is zero.
	if major == 0 || minor == 0 {
		return 0
	}

	n := homMajor + het + homMinor
	alleleCount := major + minor

	majorFreq := major / alleleCount
	minorFreq := minor / alleleCount

	// Expected genotype counts under the Hardy-Weinberg null.
	eHomMajor := majorFreq * majorFreq * n
	eHet := 2 * majorFreq * minorFreq * n
	eHomMinor := minorFreq * minorFreq * n

	return math.Pow(eHomMajor-homMajor, 2)/eHomMajor +
		math.Pow(eHet-het, 2)/eHet +
		math.Pow(eHomMinor-homMinor, 2)/eHomMinor
}

// HardyWeinbergAt derives the diploid genotype counts at one marker from
// the sample's genotype calls and returns their HardyWeinbergChiSquare.
// Calls that are not diploid are skipped. The marker must carry at most two
// distinct alleles; frequency-only samples yield ErrInsufficientData.
func HardyWeinbergAt(g *popgen.Group, marker string) (float64, error) {
	if !g.HasIndividuals() {
		return 0, fmt.Errorf("hardy-weinberg at %q: %w", marker, ErrInsufficientData)
	}

	counts, err := g.AlleleCounts(marker)
	if err != nil {
		return 0, err
	}

	alleles := popgen.SortedAlleleCounts(counts)
	if len(alleles) > 2 {
		return 0, fmt.Errorf("hardy-weinberg at %q: marker has %d alleles, at most 2 supported", marker, len(alleles))
	}

	if len(alleles) < 2 {
		// Monomorphic or unobserved.
		return 0, nil
	}

	major, minor := alleles[0], alleles[1]
	if counts[minor] > counts[major] {
		major, minor = minor, major
	}

	var homMajor, het, homMinor float64

	for _, ind := range g.Individuals() {
		for _, genotype := range ind.GenotypesAt(marker) {
			calls := genotype.Alleles()
			if len(calls) != 2 {
				continue
			}

			switch {
			case calls[0] == major && calls[1] == major:
				homMajor++
			case calls[0] == minor && calls[1] == minor:
				homMinor++
			default:
				het++
			}
		}
	}

	return HardyWeinbergChiSquare(homMajor, het, homMinor), nil
}
