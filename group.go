package popgen

import (
	"fmt"
	"sort"
)

// Group is the resolved view of a sample that every statistic consumes. It
// is built once, at the call boundary, from either a list of individuals or
// a population; the statistics packages never re-inspect the input shape.
// A Group reads the caller-owned data and never mutates it.
type Group struct {
	inds    []Individual
	pop     Population
	n       int
	markers []string
}

// FromIndividuals resolves a list of individuals into a Group. The marker
// set is taken from the first individual; markers are assumed identical and
// aligned across all individuals. An empty list or a nil element is an
// error, since no statistic can be computed from it.
func FromIndividuals(inds []Individual) (*Group, error) {
	if len(inds) == 0 {
		return nil, fmt.Errorf("popgen: no individuals provided")
	}

	for i, ind := range inds {
		if ind == nil {
			return nil, fmt.Errorf("popgen: individual %d is nil", i)
		}
	}

	return &Group{
		inds:    inds,
		n:       len(inds),
		markers: inds[0].MarkerNames(),
	}, nil
}

// FromPopulation resolves a population into a Group. Member-backed
// populations take the per-individual path; frequency-only populations keep
// the supplied frequency maps and cannot serve statistics that need raw
// genotype calls.
func FromPopulation(p Population) (*Group, error) {
	if p == nil {
		return nil, fmt.Errorf("popgen: nil population")
	}

	g := &Group{
		pop:     p,
		n:       p.IndividualCount(),
		markers: p.MarkerNames(),
	}

	if inds := p.Individuals(); len(inds) > 0 {
		g.inds = inds
	}

	return g, nil
}

// Restrict returns a view of the group limited to the given markers. The
// underlying individuals or population are shared, not copied.
func (g *Group) Restrict(markers []string) *Group {
	return &Group{
		inds:    g.inds,
		pop:     g.pop,
		n:       g.n,
		markers: markers,
	}
}

// SampleSize is the number of individuals in the sample.
func (g *Group) SampleSize() int {
	return g.n
}

// MarkerNames returns the marker set the group was resolved with. The
// returned slice is shared; callers must not modify it.
func (g *Group) MarkerNames() []string {
	return g.markers
}

// HasIndividuals reports whether per-individual genotype calls are
// available, as opposed to pre-aggregated frequencies only.
func (g *Group) HasIndividuals() bool {
	return len(g.inds) > 0
}

// Individuals returns the member individuals, or nil for frequency-only
// samples. The returned slice is shared; callers must not modify it.
func (g *Group) Individuals() []Individual {
	return g.inds
}

// AlleleCounts builds the allele occurrence table at one marker by scanning
// every individual's genotype calls there. The sum of the counts equals the
// total number of allele calls observed at the marker, which need not be
// twice the sample size (calls may be haploid or carry several alleles).
// Frequency-only populations cannot produce counts.
func (g *Group) AlleleCounts(marker string) (map[Allele]int, error) {
	if !g.HasIndividuals() {
		return nil, fmt.Errorf("popgen: population for marker %q supplies frequencies only, not genotype calls", marker)
	}

	counts := make(map[Allele]int)
	for _, ind := range g.inds {
		for _, genotype := range ind.GenotypesAt(marker) {
			for _, allele := range genotype.Alleles() {
				counts[allele]++
			}
		}
	}

	return counts, nil
}

// AlleleFrequencies returns the allele frequency table at one marker:
// occurrence counts normalized by the total calls there, or the
// population's pre-computed map when that is all that is available. A
// marker with no observed calls yields an empty map.
func (g *Group) AlleleFrequencies(marker string) (map[Allele]float64, error) {
	if !g.HasIndividuals() {
		freqs := g.pop.AlleleFrequenciesAt(marker)
		if freqs == nil {
			return nil, fmt.Errorf("popgen: population has no frequency data at marker %q", marker)
		}

		return freqs, nil
	}

	counts, err := g.AlleleCounts(marker)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	freqs := make(map[Allele]float64, len(counts))
	if total == 0 {
		return freqs, nil
	}

	for allele, n := range counts {
		freqs[allele] = float64(n) / float64(total)
	}

	return freqs, nil
}

// SortedAlleles returns the keys of a frequency table in lexicographic
// order. This is the documented table traversal order used by the pi
// statistic's adjacent-pair walk.
func SortedAlleles(freqs map[Allele]float64) []Allele {
	alleles := make([]Allele, 0, len(freqs))
	for allele := range freqs {
		alleles = append(alleles, allele)
	}
	sort.Slice(alleles, func(i, j int) bool { return alleles[i] < alleles[j] })

	return alleles
}

// SortedAlleleCounts is SortedAlleles for an occurrence-count table.
func SortedAlleleCounts(counts map[Allele]int) []Allele {
	alleles := make([]Allele, 0, len(counts))
	for allele := range counts {
		alleles = append(alleles, allele)
	}
	sort.Slice(alleles, func(i, j int) bool { return alleles[i] < alleles[j] })

	return alleles
}
