package wg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hydrowx/wxgen/wg/climo"
)

// testStore builds a smooth synthetic climatology with the default Frio
// matrices and bias constants.
func testStore(t *testing.T) *climo.Store {
	t.Helper()
	var cs climo.CurveSet
	for i := 0; i < climo.DaysPerYear; i++ {
		season := math.Sin(2.0 * math.Pi * float64(i) / 365.0)
		cs.WetTmaxMean[i] = 20.0 + 10.0*season
		cs.WetTminMean[i] = 9.0 + 8.0*season
		cs.DryTmaxMean[i] = 23.0 + 10.0*season
		cs.DryTminMean[i] = 10.0 + 8.0*season
		cs.WetTmaxStd[i] = 3.0
		cs.WetTminStd[i] = 2.5
		cs.DryTmaxStd[i] = 3.5
		cs.DryTminStd[i] = 2.8
	}
	cfg := DefaultConfig()
	a, b := cfg.Matrices()
	store, err := climo.NewStore(cs, cfg.BiasConstants(), a, b)
	require.NoError(t, err)
	return store
}

// testConfig returns the validated default parameter set over a custom
// simulation window.
func testConfig(t *testing.T, start, end string) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.StartDate = start
	cfg.EndDate = end
	require.NoError(t, cfg.Validate())
	return cfg
}
