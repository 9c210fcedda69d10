// Package climo holds the per-day-of-year temperature climatology consumed
// by the residual process: smoothed mean/std curves for Tmax and Tmin under
// wet and dry states, plus the 2x2 coefficient matrices of the lag-1 vector
// autoregression. Smoothing is a preprocessing concern; the store consumes
// finished curves.
package climo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DaysPerYear is the curve length: one entry per day of year including the
// leap day.
const DaysPerYear = 366

// Curve is a smoothed day-of-year series for one statistic of one channel.
type Curve [DaysPerYear]float64

// CurveSet groups the eight input curves. Mean curves are pre-bias; the
// store applies the additive bias constants at construction.
type CurveSet struct {
	WetTmaxMean Curve
	WetTmaxStd  Curve
	WetTminMean Curve
	WetTminStd  Curve
	DryTmaxMean Curve
	DryTmaxStd  Curve
	DryTminMean Curve
	DryTminStd  Curve
}

// Bias carries the additive corrections applied to the wet and dry mean
// curves to remove residual-model bias.
type Bias struct {
	WetTmaxAdd float64
	WetTminAdd float64
	DryTmaxAdd float64
	DryTminAdd float64
}

// DayStats is the curve lookup result for one day under one state.
type DayStats struct {
	TmaxMean float64
	TmaxStd  float64
	TminMean float64
	TminStd  float64
}

// Store is the read-only climatology for one basin. Constructed once per
// realization input set and shared; it is never mutated after construction.
type Store struct {
	wet [DaysPerYear]DayStats
	dry [DaysPerYear]DayStats
	a   *mat.Dense
	b   *mat.Dense
}

// NewStore applies the bias constants to the mean curves and captures the
// autoregressive (A) and innovation-loading (B) matrices.
func NewStore(curves CurveSet, bias Bias, a, b [2][2]float64) (*Store, error) {
	for name, c := range map[string]*Curve{
		"wet tmax std": &curves.WetTmaxStd,
		"wet tmin std": &curves.WetTminStd,
		"dry tmax std": &curves.DryTmaxStd,
		"dry tmin std": &curves.DryTminStd,
	} {
		for i, v := range c {
			if v < 0.0 || math.IsNaN(v) {
				return nil, fmt.Errorf("climatology %s curve day %d: std %g must be >= 0", name, i+1, v)
			}
		}
	}
	s := &Store{
		a: mat.NewDense(2, 2, []float64{a[0][0], a[0][1], a[1][0], a[1][1]}),
		b: mat.NewDense(2, 2, []float64{b[0][0], b[0][1], b[1][0], b[1][1]}),
	}
	for i := 0; i < DaysPerYear; i++ {
		s.wet[i] = DayStats{
			TmaxMean: curves.WetTmaxMean[i] + bias.WetTmaxAdd,
			TmaxStd:  curves.WetTmaxStd[i],
			TminMean: curves.WetTminMean[i] + bias.WetTminAdd,
			TminStd:  curves.WetTminStd[i],
		}
		s.dry[i] = DayStats{
			TmaxMean: curves.DryTmaxMean[i] + bias.DryTmaxAdd,
			TmaxStd:  curves.DryTmaxStd[i],
			TminMean: curves.DryTminMean[i] + bias.DryTminAdd,
			TminStd:  curves.DryTminStd[i],
		}
	}
	return s, nil
}

// clampDay folds an out-of-range day of year back into [1, DaysPerYear].
func clampDay(dayOfYear int) int {
	if dayOfYear < 1 {
		return 1
	}
	if dayOfYear > DaysPerYear {
		return DaysPerYear
	}
	return dayOfYear
}

// StatsFor returns the curve values for dayOfYear (1-366) under the wet or
// dry state.
func (s *Store) StatsFor(dayOfYear int, wet bool) DayStats {
	i := clampDay(dayOfYear) - 1
	if wet {
		return s.wet[i]
	}
	return s.dry[i]
}

// AMatrix returns the 2x2 lag-1 autoregressive coefficient matrix.
func (s *Store) AMatrix() *mat.Dense { return s.a }

// BMatrix returns the 2x2 innovation-loading matrix.
func (s *Store) BMatrix() *mat.Dense { return s.b }
