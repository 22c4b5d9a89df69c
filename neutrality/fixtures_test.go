package neutrality_test

import (
	"github.com/variomics/popgen"
)

// threeIndividualGroup is the canonical small sample: marker m1 carries
// alleles {A, A, T} across the three individuals and marker m2 carries
// {G, G, G}. One segregating site, one singleton.
func threeIndividualGroup() *popgen.Group {
	ind1 := popgen.NewIndividual("ind1")
	ind1.AddGenotype("m1", popgen.Haploid("A"))
	ind1.AddGenotype("m2", popgen.Haploid("G"))

	ind2 := popgen.NewIndividual("ind2")
	ind2.AddGenotype("m1", popgen.Haploid("A"))
	ind2.AddGenotype("m2", popgen.Haploid("G"))

	ind3 := popgen.NewIndividual("ind3")
	ind3.AddGenotype("m1", popgen.Haploid("T"))
	ind3.AddGenotype("m2", popgen.Haploid("G"))

	g, err := popgen.FromIndividuals([]popgen.Individual{ind1, ind2, ind3})
	if err != nil {
		panic(err)
	}

	return g
}

// tenHaploidMarkers are the marker names used by tenHaploidGroup, in order.
var tenHaploidMarkers = []string{"m01", "m02", "m03", "m04", "m05"}

// tenHaploidGroup builds 10 haploid individuals over 5 biallelic markers.
// At every marker, individual ind00 carries the rare allele T and the other
// nine carry A, so each marker contributes allele frequencies 0.1/0.9:
// 5 segregating sites, 5 singletons, pi = 5 * 10*(1-(0.01+0.81))/9 = 1.0.
func tenHaploidGroup() *popgen.Group {
	inds := make([]popgen.Individual, 0, 10)

	for i := 0; i < 10; i++ {
		ind := popgen.NewIndividual(indName(i))
		for _, marker := range tenHaploidMarkers {
			allele := popgen.Allele("A")
			if i == 0 {
				allele = "T"
			}
			ind.AddGenotype(marker, popgen.Haploid(allele))
		}
		inds = append(inds, ind)
	}

	g, err := popgen.FromIndividuals(inds)
	if err != nil {
		panic(err)
	}

	return g
}

// monomorphicOutgroup builds an outgroup of nOut individuals all fixed for
// the given allele at the same 5 markers as tenHaploidGroup.
func monomorphicOutgroup(nOut int, allele popgen.Allele) *popgen.Group {
	inds := make([]popgen.Individual, 0, nOut)

	for i := 0; i < nOut; i++ {
		ind := popgen.NewIndividual("out" + indName(i))
		for _, marker := range tenHaploidMarkers {
			ind.AddGenotype(marker, popgen.Haploid(allele))
		}
		inds = append(inds, ind)
	}

	g, err := popgen.FromIndividuals(inds)
	if err != nil {
		panic(err)
	}

	return g
}

func indName(i int) string {
	return "ind" + string(rune('0'+i/10)) + string(rune('0'+i%10))
}

// frequencyOnlyGroup wraps pre-aggregated frequencies for 10 individuals:
// one segregating marker (A 0.9, T 0.1) and one monomorphic marker.
func frequencyOnlyGroup() *popgen.Group {
	pop := popgen.NewFrequencyPopulation("pop1", 10, map[string]map[popgen.Allele]float64{
		"m1": {"A": 0.9, "T": 0.1},
		"m2": {"G": 1.0},
	})

	g, err := popgen.FromPopulation(pop)
	if err != nil {
		panic(err)
	}

	return g
}
