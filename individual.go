package popgen

import "sort"

// GenotypeCall is a concrete Genotype: the alleles from one genotyping call.
type GenotypeCall []Allele

// Alleles implements Genotype.
func (g GenotypeCall) Alleles() []Allele {
	return g
}

// Diploid builds a two-allele genotype call.
func Diploid(a, b Allele) GenotypeCall {
	return GenotypeCall{a, b}
}

// Haploid builds a single-allele genotype call.
func Haploid(a Allele) GenotypeCall {
	return GenotypeCall{a}
}

// IndividualData is a concrete in-memory Individual: a name plus the
// genotype calls observed at each marker.
type IndividualData struct {
	Name  string
	Calls map[string][]Genotype
}

// NewIndividual creates an IndividualData with no calls.
func NewIndividual(name string) *IndividualData {
	return &IndividualData{
		Name:  name,
		Calls: make(map[string][]Genotype),
	}
}

// AddGenotype records a genotype call at the named marker.
func (ind *IndividualData) AddGenotype(marker string, g Genotype) {
	if ind.Calls == nil {
		ind.Calls = make(map[string][]Genotype)
	}
	ind.Calls[marker] = append(ind.Calls[marker], g)
}

// MarkerNames implements Individual. Names are returned sorted so that
// repeated calls traverse markers in the same order.
func (ind *IndividualData) MarkerNames() []string {
	names := make([]string, 0, len(ind.Calls))
	for name := range ind.Calls {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// GenotypesAt implements Individual.
func (ind *IndividualData) GenotypesAt(marker string) []Genotype {
	return ind.Calls[marker]
}
