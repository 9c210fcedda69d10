package wg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Frio", cfg.Basin)
	assert.Equal(t, 13515, cfg.TotalDays()) // 2024-01-01 through 2060-12-31
	assert.Len(t, cfg.Events, 6)
}

func TestConfig_TotalDaysIsInclusive(t *testing.T) {
	cfg := testConfig(t, "2024-01-01", "2024-01-01")
	assert.Equal(t, 1, cfg.TotalDays())

	cfg = testConfig(t, "2024-01-01", "2024-12-30")
	assert.Equal(t, 365, cfg.TotalDays())
}

func TestConfig_ValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty basin", func(c *Config) { c.Basin = "" }, "basin"},
		{"bad start date", func(c *Config) { c.StartDate = "01/01/2024" }, "start_date"},
		{"bad end date", func(c *Config) { c.EndDate = "never" }, "end_date"},
		{"inverted window", func(c *Config) { c.StartDate, c.EndDate = "2030-01-01", "2024-01-01" }, "precedes"},
		{"zero threshold", func(c *Config) { c.WetDryThresholdMM = 0 }, "wet_dry_threshold_mm"},
		{"negative delta", func(c *Config) { c.MinDailyDeltaC = -1 }, "min_daily_delta_c"},
		{"missing dry spell month", func(c *Config) { delete(c.DrySpell, 7) }, "dry_spell missing month 7"},
		{"missing wet spell month", func(c *Config) { delete(c.WetSpell, 2) }, "wet_spell missing month 2"},
		{"missing depth month", func(c *Config) { delete(c.Depth, 11) }, "precip_depth missing month 11"},
		{"missing cap", func(c *Config) { delete(c.MonthlyCapMM, 4) }, "monthly_cap_mm"},
		{"cap below threshold", func(c *Config) { c.MonthlyCapMM[4] = 0.1 }, "monthly_cap_mm"},
		{"ragged a matrix", func(c *Config) { c.AMatrix = [][]float64{{1, 2}} }, "a_matrix"},
		{"ragged b matrix", func(c *Config) { c.BMatrix = [][]float64{{1}, {2, 3}} }, "b_matrix"},
		{"unnamed event", func(c *Config) { c.Events[0].Name = "" }, "empty name"},
		{"duplicate event", func(c *Config) { c.Events[1].Name = c.Events[0].Name }, "duplicate"},
		{"negative tolerance", func(c *Config) { c.MaxFailures = -1 }, "max_failures"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_MatricesAndBias(t *testing.T) {
	cfg := DefaultConfig()
	a, b := cfg.Matrices()
	assert.Equal(t, 0.56219295, a[0][0])
	assert.Equal(t, -0.03543818, a[1][0])
	assert.Equal(t, 0.0, b[0][1])

	bias := cfg.BiasConstants()
	assert.Equal(t, cfg.WetTmaxAddC, bias.WetTmaxAdd)
	assert.Equal(t, cfg.DryTminAddC, bias.DryTminAdd)
}
