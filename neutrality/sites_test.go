package neutrality_test

import (
	"errors"
	"testing"

	"github.com/variomics/popgen"
	"github.com/variomics/popgen/neutrality"
)

func TestSegregatingSites(t *testing.T) {
	got, err := neutrality.SegregatingSites(threeIndividualGroup())
	if err != nil {
		t.Fatal(err)
	}

	// m1 has 2 distinct alleles, m2 has 1.
	if got != 1 {
		t.Errorf("segregating sites %d, expected 1", got)
	}
}

func TestSegregatingSitesMonomorphic(t *testing.T) {
	ind1 := popgen.NewIndividual("ind1")
	ind1.AddGenotype("m1", popgen.Haploid("A"))
	ind2 := popgen.NewIndividual("ind2")
	ind2.AddGenotype("m1", popgen.Haploid("A"))

	g, err := popgen.FromIndividuals([]popgen.Individual{ind1, ind2})
	if err != nil {
		t.Fatal(err)
	}

	got, err := neutrality.SegregatingSites(g)
	if err != nil {
		t.Fatal(err)
	}

	if got != 0 {
		t.Errorf("segregating sites %d, expected 0 for a monomorphic sample", got)
	}
}

func TestSegregatingSitesFrequencyPopulation(t *testing.T) {
	got, err := neutrality.SegregatingSites(frequencyOnlyGroup())
	if err != nil {
		t.Fatal(err)
	}

	if got != 1 {
		t.Errorf("segregating sites %d, expected 1", got)
	}
}

func TestSingletons(t *testing.T) {
	got, err := neutrality.Singletons(threeIndividualGroup())
	if err != nil {
		t.Fatal(err)
	}

	// Allele T at m1 occurs exactly once.
	if got != 1 {
		t.Errorf("singletons %d, expected 1", got)
	}
}

func TestSingletonsNeedGenotypes(t *testing.T) {
	_, err := neutrality.Singletons(frequencyOnlyGroup())
	if !errors.Is(err, neutrality.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}

	// The compatibility shim maps the error to the zero sentinel.
	if got := neutrality.OrZeroCount(neutrality.Singletons(frequencyOnlyGroup())); got != 0 {
		t.Errorf("OrZeroCount returned %d, expected 0", got)
	}
}

func TestExternalMutationsRawCount(t *testing.T) {
	got, err := neutrality.ExternalMutations(tenHaploidGroup(), popgen.OutgroupCount(7))
	if err != nil {
		t.Fatal(err)
	}

	if got != 7 {
		t.Errorf("external mutations %d, expected the raw count 7 to pass through", got)
	}
}

func TestExternalMutations(t *testing.T) {
	ingroup := tenHaploidGroup()

	// The outgroup is fixed for T at every marker, matching the ingroup's
	// singleton allele: every one of the 5 singletons is external.
	got, err := neutrality.ExternalMutations(ingroup, popgen.OutgroupSamples(monomorphicOutgroup(4, "T")))
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("external mutations %d, expected 5", got)
	}

	// Fixed for A: the singleton allele T is absent from the outgroup, so
	// nothing counts.
	got, err = neutrality.ExternalMutations(ingroup, popgen.OutgroupSamples(monomorphicOutgroup(4, "A")))
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("external mutations %d, expected 0", got)
	}
}

func TestExternalMutationsPolymorphicOutgroup(t *testing.T) {
	ingroup := tenHaploidGroup()

	// A polymorphic outgroup cannot orient mutations at any marker.
	outInds := make([]popgen.Individual, 0, 2)
	for i, allele := range []popgen.Allele{"A", "T"} {
		ind := popgen.NewIndividual("out" + indName(i))
		for _, marker := range tenHaploidMarkers {
			ind.AddGenotype(marker, popgen.Haploid(allele))
		}
		outInds = append(outInds, ind)
	}

	outgroup, err := popgen.FromIndividuals(outInds)
	if err != nil {
		t.Fatal(err)
	}

	got, err := neutrality.ExternalMutations(ingroup, popgen.OutgroupSamples(outgroup))
	if err != nil {
		t.Fatal(err)
	}

	if got != 0 {
		t.Errorf("external mutations %d, expected 0 with a polymorphic outgroup", got)
	}
}

func TestExternalMutationsMissingOutgroup(t *testing.T) {
	_, err := neutrality.ExternalMutations(tenHaploidGroup(), popgen.Outgroup{})
	if !errors.Is(err, neutrality.ErrMissingOutgroup) {
		t.Errorf("expected ErrMissingOutgroup, got %v", err)
	}
}
