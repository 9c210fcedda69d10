package dist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGammaDepth_SampleStaysWithinBounds(t *testing.T) {
	g, err := NewGammaDepth("January depth", 0.78, 1.35, 0.255, 5.61, NewSource(101))
	require.NoError(t, err)

	const threshold, capMM = 0.255, 23.5
	for i := 0; i < 10000; i++ {
		v := g.Sample(threshold, capMM)
		if v < threshold || v > capMM {
			t.Fatalf("draw %d: %g outside [%g, %g]", i, v, threshold, capMM)
		}
	}
}

func TestGammaDepth_InvalidParams(t *testing.T) {
	tests := []struct {
		name             string
		a, c, loc, scale float64
	}{
		{"negative shape a", -1.0, 1.3, 0.255, 5.6},
		{"zero shape a", 0.0, 1.3, 0.255, 5.6},
		{"zero shape c", 1.0, 0.0, 0.255, 5.6},
		{"zero scale", 1.0, 1.3, 0.255, 0.0},
		{"negative scale", 1.0, 1.3, 0.255, -2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGammaDepth("bad", tt.a, tt.c, tt.loc, tt.scale, NewSource(1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParam))
		})
	}
}

func TestGammaDepth_IdenticalSeedsReproduce(t *testing.T) {
	g1, err := NewGammaDepth("a", 1.1, 1.27, 0.255, 8.35, NewSource(424242))
	require.NoError(t, err)
	g2, err := NewGammaDepth("b", 1.1, 1.27, 0.255, 8.35, NewSource(424242))
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		if v1, v2 := g1.Sample(0.255, 33.4), g2.Sample(0.255, 33.4); v1 != v2 {
			t.Fatalf("draw %d diverged: %g vs %g", i, v1, v2)
		}
	}
}

func TestSpellLength_SampleNonNegative(t *testing.T) {
	s, err := NewSpellLength("January dry", 3.9, 0.298, 2, NewSource(7))
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		if d := s.Sample(); d < 0 {
			t.Fatalf("draw %d: negative spell length %d", i, d)
		}
	}
}

func TestSpellLength_LocationFloorsTypicalDraws(t *testing.T) {
	s, err := NewSpellLength("wet", 2.5, 0.67, 1, NewSource(11))
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		if d := s.Sample(); d < 1 {
			t.Fatalf("draw %d: %d below location offset", i, d)
		}
	}
}

func TestSpellLength_DegenerateProbability(t *testing.T) {
	s, err := NewSpellLength("always", 5.0, 1.0, 3, NewSource(5))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 3, s.Sample())
	}
}

func TestSpellLength_InvalidParams(t *testing.T) {
	tests := []struct {
		name string
		n, p float64
	}{
		{"zero N", 0.0, 0.5},
		{"negative N", -3.0, 0.5},
		{"N above cap", 1000.5, 0.5},
		{"zero P", 3.0, 0.0},
		{"P above one", 3.0, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSpellLength("bad", tt.n, tt.p, 0, NewSource(1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParam))
		})
	}
}

func TestSpellLength_IdenticalSeedsReproduce(t *testing.T) {
	s1, err := NewSpellLength("a", 4.6, 0.206, 2, NewSource(314159))
	require.NoError(t, err)
	s2, err := NewSpellLength("b", 4.6, 0.206, 2, NewSource(314159))
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		if d1, d2 := s1.Sample(), s2.Sample(); d1 != d2 {
			t.Fatalf("draw %d diverged: %d vs %d", i, d1, d2)
		}
	}
}

func TestEventProcess_MagnitudeWithinRange(t *testing.T) {
	e, err := NewEventProcess("10-year", 10, 179.0, 255.7, NewSource(21), NewSource(22))
	require.NoError(t, err)

	for i := 0; i < 5000; i++ {
		m := e.NextMagnitudeMM()
		if m < 179.0 || m >= 255.7 {
			t.Fatalf("draw %d: magnitude %g outside [179.0, 255.7)", i, m)
		}
	}
}

func TestEventProcess_ArrivalIsWholeYearsInDays(t *testing.T) {
	e, err := NewEventProcess("50-year", 50, 285.0, 415.4, NewSource(31), NewSource(32))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		d := e.NextArrivalDays()
		require.GreaterOrEqual(t, d, 0.0)
		// Poisson draws are integer year counts before conversion.
		years := d / 365.25
		assert.Equal(t, float64(int(years)), years)
	}
}

func TestEventProcess_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		recur   int
		low, hi float64
	}{
		{"recurrence below two years", 1, 10.0, 20.0},
		{"equal magnitudes", 10, 20.0, 20.0},
		{"inverted magnitudes", 10, 30.0, 20.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventProcess("bad", tt.recur, tt.low, tt.hi, NewSource(1), NewSource(2))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParam))
		})
	}
}

func TestEventProcess_SeparateStreamsIsolated(t *testing.T) {
	// Consuming magnitudes must not perturb the arrival sequence.
	e1, err := NewEventProcess("a", 10, 1.0, 2.0, NewSource(77), NewSource(78))
	require.NoError(t, err)
	e2, err := NewEventProcess("b", 10, 1.0, 2.0, NewSource(77), NewSource(79))
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		e2.NextMagnitudeMM()
	}
	for i := 0; i < 100; i++ {
		if d1, d2 := e1.NextArrivalDays(), e2.NextArrivalDays(); d1 != d2 {
			t.Fatalf("draw %d: arrival streams diverged (%g vs %g)", i, d1, d2)
		}
	}
}
