// Package popgen defines the sample data model consumed by the statistics
// packages in this module: individuals carrying genotype calls at named
// markers, and populations that expose either their member individuals or
// pre-aggregated allele frequencies. The statistics themselves live in the
// neutrality and sitescan subpackages; this package reduces raw genotype
// data into the per-marker allele tables they consume.
package popgen

// Allele identifies one allele observed at a marker. Any comparable token
// works; nucleotide bases ("A", "T") and microsatellite repeat counts are
// typical.
type Allele string

// Genotype is a single genotype call at one marker. A call yields one or
// more alleles: one for haploid data, two for a diploid call, possibly more
// for pooled or polyploid data.
type Genotype interface {
	Alleles() []Allele
}

// Individual is one sample member. MarkerNames enumerates the markers this
// individual was genotyped at; GenotypesAt returns the calls at one marker,
// which may be empty if the individual has no data there. Markers are
// assumed identical and aligned across all individuals in a sample; this is
// not validated.
type Individual interface {
	MarkerNames() []string
	GenotypesAt(marker string) []Genotype
}

// Population is a pre-aggregated alternative to a list of individuals.
// Individuals may return nil when only summary frequencies are known; in
// that case AlleleFrequenciesAt must return a non-nil map for every marker,
// with frequencies in [0,1] summing to 1 across the marker's alleles.
// Statistics that need raw genotype calls (singleton counting) are
// unavailable for frequency-only populations.
type Population interface {
	IndividualCount() int
	MarkerNames() []string
	Individuals() []Individual
	AlleleFrequenciesAt(marker string) map[Allele]float64
}
