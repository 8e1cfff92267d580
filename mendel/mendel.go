// Package mendel computes probabilities of Mendelian crosses.
package mendel

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/gonum/floats"
	"github.com/gonum/mathext"
)

// InvalidFactorError is returned when a factor is not a pair of alleles.
type InvalidFactorError struct {
	Factor string
}

func (e *InvalidFactorError) Error() string {
	return fmt.Sprintf("factor %q should consist of two alleles", e.Factor)
}

// Outcomes maps a genotype (alleles sorted) to its probability.
type Outcomes map[string]float64

// Keys returns genotypes in sorted order.
func (o Outcomes) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns probabilities in the order of Keys.
func (o Outcomes) Values() []float64 {
	keys := o.Keys()
	vals := make([]float64, len(keys))
	for i, k := range keys {
		vals[i] = o[k]
	}
	return vals
}

// Total returns the sum of all the probabilities.
func (o Outcomes) Total() float64 {
	return floats.Sum(o.Values())
}

// PunnettSquare returns probabilities of offspring genotypes for a
// cross of two factors, e.g. "Aa" and "aa". Every pair of alleles is
// sorted, so "aA" and "Aa" is the same genotype "Aa".
func PunnettSquare(factor1, factor2 string) (Outcomes, error) {
	if len(factor1) != 2 {
		return nil, &InvalidFactorError{Factor: factor1}
	}
	if len(factor2) != 2 {
		return nil, &InvalidFactorError{Factor: factor2}
	}
	counts := make(map[string]int, 4)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a, b := factor1[i], factor2[j]
			if b < a {
				a, b = b, a
			}
			counts[string([]byte{a, b})]++
		}
	}
	o := make(Outcomes, len(counts))
	for g, c := range counts {
		o[g] = float64(c) / 4
	}
	return o, nil
}

// DominantProbability returns the probability that two random
// organisms from a population of k homozygous dominant, m heterozygous
// and n homozygous recessive individuals produce an offspring with a
// dominant phenotype.
func DominantProbability(k, m, n int) (float64, error) {
	if k < 0 || m < 0 || n < 0 {
		return 0, errors.New("negative population size")
	}
	total := float64(k + m + n)
	if total < 2 {
		return 0, errors.New("population should have at least two organisms")
	}
	pairs := total * (total - 1)
	fm, fn := float64(m), float64(n)
	// probability of a recessive offspring
	rec := fn*(fn-1)/pairs +
		fm*fn/pairs +
		fm*(fm-1)/pairs*0.25
	return 1 - rec, nil
}

// IndependentAlleles returns the probability that at least n of the
// 2^k organisms in generation k are AaBb, given that generation 0 is a
// single AaBb organism and every organism mates with an AaBb one and
// has two children.
func IndependentAlleles(k, n int) (float64, error) {
	if k < 0 || k > 62 {
		return 0, fmt.Errorf("generation %d out of range", k)
	}
	total := 1 << uint(k)
	if n < 0 || n > total {
		return 0, fmt.Errorf("n=%d is out of range [0, %d]", n, total)
	}
	if n == 0 {
		return 1, nil
	}
	// P(X >= n) for X ~ Bin(total, 1/4) is I_{1/4}(n, total-n+1)
	p := mathext.RegIncBeta(float64(n), float64(total-n+1), 0.25)
	return math.Min(p, 1), nil
}
