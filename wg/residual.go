package wg

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hydrowx/wxgen/wg/climo"
)

const (
	// sigmaThreshold bounds each standardized residual channel.
	sigmaThreshold = 4.0
	// fallbackInnovation replaces a non-finite white-noise draw.
	fallbackInnovation = 0.25
	// fallbackResidual replaces both channels when the propagation itself
	// produces a non-finite value.
	fallbackResidual = 1.0
)

// ResidualProcess propagates the standardized multivariate temperature
// residual (chi) with a lag-1 vector autoregression and maps it onto
// absolute Tmax/Tmin through the climatology curves. The per-day order is
// fixed: innovation, propagate, clip, map, bound. Reordering these steps
// changes the generated climatology.
type ResidualProcess struct {
	store    *climo.Store
	normal   distuv.Normal
	minDelta float64

	chi     *mat.Dense // 1x2 row vector, today's residual
	chiPrev *mat.Dense // 1x2 row vector, yesterday's residual
	eps     *mat.Dense // 1x2 row vector, today's innovation
	scratch *mat.Dense // 1x2 work area for the propagation products
}

// NewResidualProcess binds the white-noise stream and primes the innovation
// tracker with one draw, matching the one set-up draw the generator performs
// before the first simulated day. Both chi vectors start at (1, 1).
func NewResidualProcess(store *climo.Store, minDelta float64, src rand.Source) *ResidualProcess {
	rp := &ResidualProcess{
		store:    store,
		normal:   distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		minDelta: minDelta,
		chi:      mat.NewDense(1, 2, []float64{1, 1}),
		chiPrev:  mat.NewDense(1, 2, []float64{1, 1}),
		eps:      mat.NewDense(1, 2, nil),
		scratch:  mat.NewDense(1, 2, nil),
	}
	rp.drawInnovation()
	return rp
}

// drawInnovation fills eps with one standard-normal value per channel,
// substituting the documented fallback for non-finite draws.
func (rp *ResidualProcess) drawInnovation() {
	for j := 0; j < 2; j++ {
		v := rp.normal.Rand()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = fallbackInnovation
		}
		rp.eps.Set(0, j, v)
	}
}

// Step advances the residual one day and returns the bounded Tmax/Tmin for
// dayOfYear under the given state. It never fails: numeric trouble is
// absorbed by the documented fallback substitutions.
func (rp *ResidualProcess) Step(dayOfYear int, wet bool) (tmaxC, tminC float64) {
	// 1. Fresh innovation.
	rp.drawInnovation()

	// 2. chi_t = chi_{t-1}*A + eps*B, checked for finiteness.
	rp.chi.Mul(rp.chiPrev, rp.store.AMatrix())
	rp.scratch.Mul(rp.eps, rp.store.BMatrix())
	rp.chi.Add(rp.chi, rp.scratch)
	if !isFiniteRow(rp.chi) {
		rp.chi.Set(0, 0, fallbackResidual)
		rp.chi.Set(0, 1, fallbackResidual)
	}

	// 3. Hard sigma clip per channel.
	for j := 0; j < 2; j++ {
		v := rp.chi.At(0, j)
		if v > sigmaThreshold {
			v = sigmaThreshold
		} else if v < -sigmaThreshold {
			v = -sigmaThreshold
		}
		rp.chi.Set(0, j, v)
	}

	// 4. Map onto absolute temperature through the state's curves; a
	// non-finite result falls back to the dry-state mean for the day.
	stats := rp.store.StatsFor(dayOfYear, wet)
	dry := rp.store.StatsFor(dayOfYear, false)
	tmaxC = rp.chi.At(0, 0)*stats.TmaxStd + stats.TmaxMean
	tminC = rp.chi.At(0, 1)*stats.TminStd + stats.TminMean
	if math.IsNaN(tmaxC) || math.IsInf(tmaxC, 0) {
		tmaxC = dry.TmaxMean
	}
	if math.IsNaN(tminC) || math.IsInf(tminC, 0) {
		tminC = dry.TminMean
	}

	// 5. Violations raise Tmax, never lower Tmin.
	if tmaxC-tminC < rp.minDelta {
		tmaxC = tminC + rp.minDelta
	}

	// 6. Lag-1 memory only.
	rp.chiPrev.Copy(rp.chi)
	return tmaxC, tminC
}

// Chi returns today's standardized residual channels. Exposed for tests.
func (rp *ResidualProcess) Chi() (tmaxChan, tminChan float64) {
	return rp.chi.At(0, 0), rp.chi.At(0, 1)
}

func isFiniteRow(m *mat.Dense) bool {
	for j := 0; j < 2; j++ {
		v := m.At(0, j)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
