package popgen

import "sort"

// PopulationData is a concrete Population. It carries either member
// individuals or, when only summary data is available, per-marker allele
// frequency maps. The two shapes are mutually exclusive; NewPopulation and
// NewFrequencyPopulation pick the shape.
type PopulationData struct {
	Name    string
	members []Individual

	// nIndividuals and freqs are only used for frequency-only populations.
	nIndividuals int
	freqs        map[string]map[Allele]float64
}

// NewPopulation wraps a set of member individuals.
func NewPopulation(name string, members []Individual) *PopulationData {
	return &PopulationData{
		Name:    name,
		members: members,
	}
}

// NewFrequencyPopulation builds a frequency-only population: nIndividuals
// samples whose per-marker allele frequencies have already been computed.
// Frequencies at each marker are expected to sum to 1; this is not
// validated.
func NewFrequencyPopulation(name string, nIndividuals int, freqs map[string]map[Allele]float64) *PopulationData {
	return &PopulationData{
		Name:         name,
		nIndividuals: nIndividuals,
		freqs:        freqs,
	}
}

// IndividualCount implements Population.
func (p *PopulationData) IndividualCount() int {
	if p.members != nil {
		return len(p.members)
	}

	return p.nIndividuals
}

// MarkerNames implements Population. For a member-backed population the
// names come from the first individual; for a frequency-only population,
// from the frequency table. Sorted for deterministic traversal.
func (p *PopulationData) MarkerNames() []string {
	if len(p.members) > 0 {
		return p.members[0].MarkerNames()
	}

	names := make([]string, 0, len(p.freqs))
	for name := range p.freqs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Individuals implements Population; nil for frequency-only populations.
func (p *PopulationData) Individuals() []Individual {
	return p.members
}

// AlleleFrequenciesAt implements Population; nil for member-backed
// populations, which are aggregated through their individuals instead.
func (p *PopulationData) AlleleFrequenciesAt(marker string) map[Allele]float64 {
	if p.freqs == nil {
		return nil
	}

	return p.freqs[marker]
}
