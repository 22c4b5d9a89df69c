package neutrality

import (
	"fmt"

	"github.com/carbocation/pfx"

	"github.com/variomics/popgen"
)

// SegregatingSites counts the markers at which more than one distinct
// allele was observed across the sample. Works for both genotype-backed and
// frequency-only samples, since only the number of distinct alleles at each
// marker matters.
func SegregatingSites(g *popgen.Group) (int, error) {
	segregating := 0

	for _, marker := range g.MarkerNames() {
		freqs, err := g.AlleleFrequencies(marker)
		if err != nil {
			return 0, pfx.Err(err)
		}

		if len(freqs) > 1 {
			segregating++
		}
	}

	return segregating, nil
}

// Singletons counts (marker, allele) pairs whose allele was observed
// exactly once across the whole sample. Singleton detection needs raw
// occurrence counts, so frequency-only samples yield ErrInsufficientData.
func Singletons(g *popgen.Group) (int, error) {
	if !g.HasIndividuals() {
		return 0, fmt.Errorf("counting singletons: %w", ErrInsufficientData)
	}

	singletons := 0

	for _, marker := range g.MarkerNames() {
		counts, err := g.AlleleCounts(marker)
		if err != nil {
			return 0, pfx.Err(err)
		}

		for _, n := range counts {
			if n == 1 {
				singletons++
			}
		}
	}

	return singletons, nil
}

// ExternalMutations counts the derived mutations in the ingroup relative to
// the outgroup: alleles observed exactly once in the ingroup, at markers
// where the outgroup is monomorphic, and where the singleton allele is also
// present in the outgroup. An outgroup built with popgen.OutgroupCount
// passes its pre-computed count through unchanged. Markers are taken from
// the ingroup; the outgroup is expected to share the same marker names,
// which is not validated.
func ExternalMutations(ingroup *popgen.Group, out popgen.Outgroup) (int, error) {
	if out.Missing() {
		return 0, fmt.Errorf("counting external mutations: %w", ErrMissingOutgroup)
	}

	if n, ok := out.Count(); ok {
		return n, nil
	}

	if !ingroup.HasIndividuals() {
		return 0, fmt.Errorf("counting external mutations in ingroup: %w", ErrInsufficientData)
	}

	outgroup := out.Samples()
	external := 0

	for _, marker := range ingroup.MarkerNames() {
		outFreqs, err := outgroup.AlleleFrequencies(marker)
		if err != nil {
			return 0, pfx.Err(err)
		}

		// A polymorphic outgroup cannot orient mutations at this marker.
		if len(outFreqs) > 1 {
			continue
		}

		inCounts, err := ingroup.AlleleCounts(marker)
		if err != nil {
			return 0, pfx.Err(err)
		}

		for _, allele := range popgen.SortedAlleleCounts(inCounts) {
			if inCounts[allele] != 1 {
				continue
			}

			if _, shared := outFreqs[allele]; shared {
				external++
			}
		}
	}

	return external, nil
}
