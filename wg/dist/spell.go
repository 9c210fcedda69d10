package dist

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// maxSuccesses bounds the negative binomial N parameter; fitted spell
// parameters far above this indicate a unit mixup upstream.
const maxSuccesses = 1000.0

// SpellLength samples wet or dry spell durations in whole days from a
// negative binomial distribution with N successes, single-success
// probability P, and an integer location offset.
//
// The draw uses the gamma-Poisson mixture: lambda ~ Gamma(N, rate P/(1-P))
// followed by X ~ Poisson(lambda), which is the standard construction of the
// negative binomial from continuous primitives.
type SpellLength struct {
	name    string
	n       float64
	p       float64
	loc     int
	mix     distuv.Gamma
	poisSrc rand.Source
}

// NewSpellLength validates the negative binomial parameters and binds the
// distribution to src.
func NewSpellLength(name string, n, p float64, loc int, src rand.Source) (*SpellLength, error) {
	if n <= 0.0 || n > maxSuccesses || math.IsNaN(n) {
		return nil, fmt.Errorf("%w: spell %q N=%g must be in (0, %g]", ErrInvalidParam, name, n, maxSuccesses)
	}
	if p <= 0.0 || p > 1.0 || math.IsNaN(p) {
		return nil, fmt.Errorf("%w: spell %q P=%g must be in (0, 1]", ErrInvalidParam, name, p)
	}
	s := &SpellLength{name: name, n: n, p: p, loc: loc, poisSrc: src}
	if p < 1.0 {
		s.mix = distuv.Gamma{Alpha: n, Beta: p / (1.0 - p), Src: src}
	}
	return s, nil
}

// Name returns the descriptive name given at construction.
func (s *SpellLength) Name() string { return s.name }

// Sample draws one non-negative spell length in days.
func (s *SpellLength) Sample() int {
	if s.p >= 1.0 {
		// Degenerate case: every trial succeeds, zero failures.
		return s.loc
	}
	lambda := s.mix.Rand()
	if !(lambda > 0.0) || math.IsInf(lambda, 0) {
		return s.loc
	}
	pois := distuv.Poisson{Lambda: lambda, Src: s.poisSrc}
	d := s.loc + int(pois.Rand())
	if d < 0 {
		return 0
	}
	return d
}
