package wg

import (
	"fmt"
	"time"

	"github.com/hydrowx/wxgen/wg/dist"
)

// SamplerBank holds the per-calendar-month spell-length and depth
// distributions for one realization, each bound to its own stream. All
// streams within a family share the same derived seed, so their draw counts
// advance in lockstep.
//
// The bank draws one value from every distribution every simulated day
// (Refill), whether or not that month is in effect. Only the active month's
// value is consumed, but the unconditional draws keep every stream's
// position independent of which logic paths actually ran — changing
// unrelated branches must not desynchronize any other sampler's sequence.
// Do not optimize the unused draws away.
type SamplerBank struct {
	drySpell  [13]*dist.SpellLength // index 1-12
	wetSpell  [13]*dist.SpellLength
	depth     [13]*dist.GammaDepth
	capsMM    [13]float64
	threshold float64

	pendingDry   [13]int
	pendingWet   [13]int
	pendingDepth [13]float64
}

// NewSamplerBank constructs all 36 monthly distributions from the config and
// the realization's effective seeds, then performs the initial fill (one
// draw per distribution, depths clamped by the start month's cap).
func NewSamplerBank(cfg *Config, seeds SeedBases, startMonth time.Month) (*SamplerBank, error) {
	b := &SamplerBank{threshold: cfg.WetDryThresholdMM}
	for m := 1; m <= 12; m++ {
		dp := cfg.DrySpell[m]
		wp := cfg.WetSpell[m]
		pp := cfg.Depth[m]
		b.capsMM[m] = cfg.MonthlyCapMM[m]

		d, err := dist.NewSpellLength(fmt.Sprintf("Dry spell, Month %d", m),
			dp.N, dp.P, dp.Location, dist.NewSource(seeds.DrySpell))
		if err != nil {
			return nil, err
		}
		w, err := dist.NewSpellLength(fmt.Sprintf("Wet spell, Month %d", m),
			wp.N, wp.P, wp.Location, dist.NewSource(seeds.WetSpell))
		if err != nil {
			return nil, err
		}
		g, err := dist.NewGammaDepth(fmt.Sprintf("Precip depth, Month %d", m),
			pp.A, pp.C, pp.Loc, pp.Scale, dist.NewSource(seeds.PrecipDepth))
		if err != nil {
			return nil, err
		}
		b.drySpell[m], b.wetSpell[m], b.depth[m] = d, w, g
	}
	b.Refill(startMonth)
	return b, nil
}

// Refill draws one value from every month's distributions. Depth clamping
// uses the cap of the month currently in effect, for every month's
// distribution, exactly as the calibrated generator behaves.
func (b *SamplerBank) Refill(activeMonth time.Month) {
	activeCap := b.capsMM[int(activeMonth)]
	for m := 1; m <= 12; m++ {
		b.pendingDry[m] = b.drySpell[m].Sample()
		b.pendingWet[m] = b.wetSpell[m].Sample()
		b.pendingDepth[m] = b.depth[m].Sample(b.threshold, activeCap)
	}
}

// DrySpellDays returns the pre-drawn dry spell length for month.
func (b *SamplerBank) DrySpellDays(month time.Month) int { return b.pendingDry[int(month)] }

// WetSpellDays returns the pre-drawn wet spell length for month.
func (b *SamplerBank) WetSpellDays(month time.Month) int { return b.pendingWet[int(month)] }

// DepthMM returns the pre-drawn wet-day precipitation depth for month.
func (b *SamplerBank) DepthMM(month time.Month) float64 { return b.pendingDepth[int(month)] }
