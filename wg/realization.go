package wg

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hydrowx/wxgen/wg/climo"
	"github.com/hydrowx/wxgen/wg/dist"
)

// Realization is the unit of independent simulation: one full pass from the
// start date to the end date with its own seeded samplers, weather state,
// spell counter, residual state, event series, and output buffer.
// Realizations never share mutable state; they differ only by the
// realization-indexed seed offset.
type Realization struct {
	Index int

	cfg      *Config
	bank     *SamplerBank
	residual *ResidualProcess
	events   *EventTracker

	state     WeatherState
	remaining int

	records []DailyRecord
}

// NewRealization constructs the complete per-realization engine state.
// Construction fails fast on invalid distribution parameters, before any
// day is simulated.
func NewRealization(cfg *Config, store *climo.Store, index int) (*Realization, error) {
	seeds := cfg.Seeds.ForRealization(index)

	bank, err := NewSamplerBank(cfg, seeds, cfg.Start().Month())
	if err != nil {
		return nil, fmt.Errorf("realization %d: %w", index, err)
	}
	events, err := NewEventTracker(cfg.Events, seeds)
	if err != nil {
		return nil, fmt.Errorf("realization %d: %w", index, err)
	}

	r := &Realization{
		Index:    index,
		cfg:      cfg,
		bank:     bank,
		residual: NewResidualProcess(store, cfg.MinDailyDeltaC, dist.NewSource(seeds.StdNormal)),
		events:   events,
		records:  make([]DailyRecord, cfg.TotalDays()),
	}

	// The initial state comes from one extra uniform draw off a stream
	// seeded one below the depth sampler's effective seed; the first spell
	// length is the bank's construction-time draw for the start month.
	starter := newStream(seeds.PrecipDepth - 1)
	startMonth := cfg.Start().Month()
	if starter.Float64() > 0.5 {
		r.state = Wet
		r.remaining = bank.WetSpellDays(startMonth)
	} else {
		r.state = Dry
		r.remaining = bank.DrySpellDays(startMonth)
	}
	return r, nil
}

// Run walks the daily state machine over the fixed horizon and returns the
// completed result. The loop never terminates early.
func (r *Realization) Run() (*Result, error) {
	start := r.cfg.Start()
	total := r.cfg.TotalDays()
	logrus.Debugf("realization %d: %d days starting %s in %s state (spell %d)",
		r.Index, total, start.Format("2006-01-02"), r.state, r.remaining)

	for j := 0; j < total; j++ {
		date := start.AddDate(0, 0, j)
		month := date.Month()

		// Advance every sampler stream once per day regardless of use.
		r.bank.Refill(month)

		precip := 0.0
		switch {
		case r.state == Wet && r.remaining <= 0:
			// Spell exhausted: toggle to dry, new dry spell for this month.
			r.state = Dry
			r.remaining = r.bank.DrySpellDays(month)
		case r.state == Wet:
			// Event overlay applies only to wet days with remaining spell;
			// triggered magnitudes replace the base depth and sum across
			// classes firing the same day.
			if mag, fired := r.events.Trigger(j, date); fired {
				precip = mag
			} else {
				precip = r.bank.DepthMM(month)
			}
		case r.remaining <= 0:
			// Dry spell exhausted: toggle to wet. A transition day always
			// receives a base depth, never an event check.
			r.state = Wet
			r.remaining = r.bank.WetSpellDays(month)
			precip = r.bank.DepthMM(month)
		default:
			// Mid dry spell.
		}

		tmax, tmin := r.residual.Step(date.YearDay(), r.state == Wet)
		r.records[j] = DailyRecord{TmaxC: tmax, TminC: tmin, PrecipMM: precip}
		r.remaining--
	}

	return &Result{
		Index:   r.Index,
		Start:   start,
		End:     r.cfg.End(),
		Records: r.records,
		Events:  r.events.Series,
	}, nil
}
