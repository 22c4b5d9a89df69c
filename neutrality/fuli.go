package neutrality

import (
	"fmt"
	"math"

	"github.com/variomics/popgen"
)

// FuLiD computes Fu and Li's D, which contrasts the total number of
// mutations with the number of external (derived) mutations oriented by an
// outgroup (Fu and Li 1993). The outgroup may be a sample to compare
// against or a pre-computed external mutation count; if it is missing the
// test cannot be oriented and ErrMissingOutgroup is returned.
func FuLiD(ingroup *popgen.Group, out popgen.Outgroup) (float64, error) {
	external, err := ExternalMutations(ingroup, out)
	if err != nil {
		return 0, err
	}

	segSites, err := SegregatingSites(ingroup)
	if err != nil {
		return 0, err
	}

	if segSites <= 0 {
		return 0, fmt.Errorf("fu and li's D: %w", ErrNoSegregatingSites)
	}

	n := float64(ingroup.SampleSize())
	s := float64(segSites)

	a := harmonicSum(ingroup.SampleSize() - 1)
	b := harmonicSquaredSum(ingroup.SampleSize() - 1)
	c := 2 * (n*a - 2*(n-1)) / ((n - 1) * (n - 2))

	v := 1 + (a*a/(b+a*a))*(c-(n+1)/(n-1))
	u := a - 1 - v

	return (s - a*float64(external)) / math.Sqrt(u*s+v*s*s), nil
}

// FuLiDStar computes Fu and Li's D*, the outgroup-free variant of D that
// substitutes the singleton count for the external mutation count, with the
// corrected coefficients of Simonsen, Churchill and Aquadro (1995). It
// requires raw genotype calls to count singletons.
func FuLiDStar(g *popgen.Group) (float64, error) {
	singletons, err := Singletons(g)
	if err != nil {
		return 0, err
	}

	segSites, err := SegregatingSites(g)
	if err != nil {
		return 0, err
	}

	if segSites <= 0 {
		return 0, fmt.Errorf("fu and li's D*: %w", ErrNoSegregatingSites)
	}

	n := float64(g.SampleSize())
	s := float64(segSites)

	a := harmonicSum(g.SampleSize() - 1)
	b := harmonicSquaredSum(g.SampleSize() - 1)
	a1 := harmonicSum(g.SampleSize())

	cn := 2 * (n*a - 2*(n-1)) / ((n - 1) * (n - 2))
	dn := cn + (n-2)/((n-1)*(n-1)) +
		(2/(n-1))*(1.5-(2*a1-3)/(n-2)-1/n)

	vStar := ((n/(n-1))*(n/(n-1))*b + a*a*dn - 2*(n*a*(a+1))/((n-1)*(n-1))) /
		(a*a + b)
	uStar := (n/(n-1))*(a-n/(n-1)) - vStar

	return ((n/(n-1))*s - a*float64(singletons)) / math.Sqrt(uStar*s+vStar*s*s), nil
}

// FuLiF computes Fu and Li's F, which contrasts nucleotide diversity with
// the external mutation count oriented by an outgroup (Fu and Li 1993; Fu
// 1996). As with FuLiD, a missing outgroup returns ErrMissingOutgroup.
func FuLiF(ingroup *popgen.Group, out popgen.Outgroup) (float64, error) {
	external, err := ExternalMutations(ingroup, out)
	if err != nil {
		return 0, err
	}

	segSites, err := SegregatingSites(ingroup)
	if err != nil {
		return 0, err
	}

	if segSites <= 0 {
		return 0, fmt.Errorf("fu and li's F: %w", ErrNoSegregatingSites)
	}

	piSum, err := Pi(ingroup)
	if err != nil {
		return 0, err
	}

	n := float64(ingroup.SampleSize())
	s := float64(segSites)

	a := harmonicSum(ingroup.SampleSize() - 1)
	a1 := harmonicSum(ingroup.SampleSize())
	b := harmonicSquaredSum(ingroup.SampleSize() - 1)
	c := 2 * (n*a - 2*(n-1)) / ((n - 1) * (n - 2))

	vF := (c + 2*(n*n+n+3)/(9*n*(n-1)) - 2/(n-1)) / (a*a + b)
	uF := (1+(n+1)/(3*(n-1))-4*((n+1)/((n-1)*(n-1)))*(a1-2*n/(n+1)))/a - vF

	return (piSum - float64(external)) / math.Sqrt(uF*s+vF*s*s), nil
}

// FuLiFStar computes Fu and Li's F*, the outgroup-free variant of F built
// on the singleton count, with the Simonsen, Churchill and Aquadro (1995)
// coefficients. It requires raw genotype calls to count singletons.
func FuLiFStar(g *popgen.Group) (float64, error) {
	singletons, err := Singletons(g)
	if err != nil {
		return 0, err
	}

	segSites, err := SegregatingSites(g)
	if err != nil {
		return 0, err
	}

	if segSites <= 0 {
		return 0, fmt.Errorf("fu and li's F*: %w", ErrNoSegregatingSites)
	}

	piSum, err := Pi(g)
	if err != nil {
		return 0, err
	}

	n := float64(g.SampleSize())
	s := float64(segSites)

	a := harmonicSum(g.SampleSize() - 1)
	a1 := harmonicSum(g.SampleSize())
	b := harmonicSquaredSum(g.SampleSize() - 1)

	vFStar := ((2*n*n*n+110*n*n-255*n+153)/(9*n*n*(n-1)) +
		2*(n-1)*a/(n*n) - 8*b/n) / (a*a + b)
	uFStar := (n/(n+1)+(n+1)/(3*(n-1))-4/(n*(n-1))+
		2*((n+1)/((n-1)*(n-1)))*(a1-2*n/(n+1)))/a - vFStar

	return (piSum - ((n-1)/n)*float64(singletons)) / math.Sqrt(uFStar*s+vFStar*s*s), nil
}
