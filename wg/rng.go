package wg

import (
	"golang.org/x/exp/rand"

	"github.com/hydrowx/wxgen/wg/dist"
)

// SeedBases names the six independent integer seed bases the engine
// consumes. Each sampler's effective seed is its base plus the realization
// index, so sequences never collide across realizations and a run can be
// split into chunks of realizations without changing any individual
// realization's output.
type SeedBases struct {
	PrecipDepth     int64 `yaml:"precip_depth"`
	StdNormal       int64 `yaml:"std_normal"`
	WetSpell        int64 `yaml:"wet_spell"`
	DrySpell        int64 `yaml:"dry_spell"`
	EventRecurrence int64 `yaml:"event_recurrence"`
	EventMagnitude  int64 `yaml:"event_magnitude"`
}

// DefaultSeedBases returns the canonical production seed bases.
func DefaultSeedBases() SeedBases {
	return SeedBases{
		PrecipDepth:     21342,
		StdNormal:       31344,
		WetSpell:        41446,
		DrySpell:        51548,
		EventRecurrence: 62379,
		EventMagnitude:  73871,
	}
}

// ForRealization offsets every base by the realization index, yielding the
// effective seeds for that realization.
func (s SeedBases) ForRealization(index int) SeedBases {
	n := int64(index)
	return SeedBases{
		PrecipDepth:     s.PrecipDepth + n,
		StdNormal:       s.StdNormal + n,
		WetSpell:        s.WetSpell + n,
		DrySpell:        s.DrySpell + n,
		EventRecurrence: s.EventRecurrence + n,
		EventMagnitude:  s.EventMagnitude + n,
	}
}

// newStream returns an independent uniform stream for the given seed.
func newStream(seed int64) *rand.Rand {
	return rand.New(dist.NewSource(seed))
}
