package wg

import (
	"fmt"
	"time"

	"github.com/hydrowx/wxgen/wg/climo"
)

// SpellParams are the negative binomial parameters for one calendar month's
// wet or dry spell-length distribution.
type SpellParams struct {
	N        float64 `yaml:"n"`
	P        float64 `yaml:"p"`
	Location int     `yaml:"location"`
}

// DepthParams are the generalized two-parameter gamma parameters for one
// calendar month's wet-day precipitation depth distribution.
type DepthParams struct {
	A     float64 `yaml:"a"`
	C     float64 `yaml:"c"`
	Loc   float64 `yaml:"loc"`
	Scale float64 `yaml:"scale"`
}

// EventClass configures one extreme-event return-period class.
type EventClass struct {
	Name            string  `yaml:"name"`
	RecurrenceYears int     `yaml:"recurrence_years"`
	LowMM           float64 `yaml:"low_mm"`
	HighMM          float64 `yaml:"high_mm"`
}

// Config is the engine input set for one study: simulation window, seed
// bases, the fitted monthly distribution parameters, monthly caps, the
// residual-process matrices and bias constants, and the extreme-event
// classes. It is immutable once validated; realizations share one Config.
type Config struct {
	Basin       string  `yaml:"basin"`
	LatitudeDeg float64 `yaml:"latitude_deg"`
	StartDate   string  `yaml:"start_date"`
	EndDate     string  `yaml:"end_date"`

	// WetDryThresholdMM is the minimum depth for a day to count as wet.
	WetDryThresholdMM float64 `yaml:"wet_dry_threshold_mm"`
	// MinDailyDeltaC is the smallest allowed Tmax - Tmin on any day.
	MinDailyDeltaC float64 `yaml:"min_daily_delta_c"`

	Seeds SeedBases `yaml:"seeds"`

	DrySpell     map[int]SpellParams `yaml:"dry_spell"`
	WetSpell     map[int]SpellParams `yaml:"wet_spell"`
	Depth        map[int]DepthParams `yaml:"precip_depth"`
	MonthlyCapMM map[int]float64     `yaml:"monthly_cap_mm"`

	// Bias constants added to the wet/dry mean temperature curves.
	WetTmaxAddC float64 `yaml:"wet_tmax_add_c"`
	WetTminAddC float64 `yaml:"wet_tmin_add_c"`
	DryTmaxAddC float64 `yaml:"dry_tmax_add_c"`
	DryTminAddC float64 `yaml:"dry_tmin_add_c"`

	// AMatrix and BMatrix are the 2x2 lag-1 autoregressive and
	// innovation-loading matrices, row-major.
	AMatrix [][]float64 `yaml:"a_matrix"`
	BMatrix [][]float64 `yaml:"b_matrix"`

	Events []EventClass `yaml:"events"`

	Climatology climo.CurveFiles `yaml:"climatology"`

	// MaxFailures is the number of failed realizations tolerated before the
	// coordinator reports the whole run as failed.
	MaxFailures int `yaml:"max_failures"`

	start time.Time
	end   time.Time
}

// Validate checks completeness of the monthly tables, parses the simulation
// window, and verifies matrix shapes. It must be called before the Config is
// handed to realizations.
func (c *Config) Validate() error {
	if c.Basin == "" {
		return fmt.Errorf("config: basin is required")
	}
	var err error
	if c.start, err = time.Parse(time.DateOnly, c.StartDate); err != nil {
		return fmt.Errorf("config: bad start_date %q: %w", c.StartDate, err)
	}
	if c.end, err = time.Parse(time.DateOnly, c.EndDate); err != nil {
		return fmt.Errorf("config: bad end_date %q: %w", c.EndDate, err)
	}
	if c.end.Before(c.start) {
		return fmt.Errorf("config: end_date %s precedes start_date %s", c.EndDate, c.StartDate)
	}
	if c.WetDryThresholdMM <= 0 {
		return fmt.Errorf("config: wet_dry_threshold_mm must be > 0")
	}
	if c.MinDailyDeltaC < 0 {
		return fmt.Errorf("config: min_daily_delta_c must be >= 0")
	}
	for m := 1; m <= 12; m++ {
		if _, ok := c.DrySpell[m]; !ok {
			return fmt.Errorf("config: dry_spell missing month %d", m)
		}
		if _, ok := c.WetSpell[m]; !ok {
			return fmt.Errorf("config: wet_spell missing month %d", m)
		}
		if _, ok := c.Depth[m]; !ok {
			return fmt.Errorf("config: precip_depth missing month %d", m)
		}
		if capMM, ok := c.MonthlyCapMM[m]; !ok || capMM <= c.WetDryThresholdMM {
			return fmt.Errorf("config: monthly_cap_mm month %d must be present and above the wet/dry threshold", m)
		}
	}
	if len(c.AMatrix) != 2 || len(c.AMatrix[0]) != 2 || len(c.AMatrix[1]) != 2 {
		return fmt.Errorf("config: a_matrix must be 2x2")
	}
	if len(c.BMatrix) != 2 || len(c.BMatrix[0]) != 2 || len(c.BMatrix[1]) != 2 {
		return fmt.Errorf("config: b_matrix must be 2x2")
	}
	names := make(map[string]bool, len(c.Events))
	for _, ev := range c.Events {
		if ev.Name == "" {
			return fmt.Errorf("config: event class with empty name")
		}
		if names[ev.Name] {
			return fmt.Errorf("config: duplicate event class %q", ev.Name)
		}
		names[ev.Name] = true
	}
	if c.MaxFailures < 0 {
		return fmt.Errorf("config: max_failures must be >= 0")
	}
	return nil
}

// Start returns the parsed simulation start date. Valid after Validate.
func (c *Config) Start() time.Time { return c.start }

// End returns the parsed simulation end date. Valid after Validate.
func (c *Config) End() time.Time { return c.end }

// TotalDays is the fixed realization length, inclusive of both endpoints.
func (c *Config) TotalDays() int {
	return int(c.end.Sub(c.start).Hours()/24) + 1
}

// Matrices returns the A and B coefficients as fixed 2x2 arrays.
func (c *Config) Matrices() (a, b [2][2]float64) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a[i][j] = c.AMatrix[i][j]
			b[i][j] = c.BMatrix[i][j]
		}
	}
	return a, b
}

// BiasConstants returns the additive mean-curve corrections in climo form.
func (c *Config) BiasConstants() climo.Bias {
	return climo.Bias{
		WetTmaxAdd: c.WetTmaxAddC,
		WetTminAdd: c.WetTminAddC,
		DryTmaxAdd: c.DryTmaxAddC,
		DryTminAdd: c.DryTminAddC,
	}
}

// DefaultConfig returns the fitted Frio basin parameter set. Climatology
// file paths and the simulation window still have to be supplied by the
// caller; everything else is a realistic, runnable default.
func DefaultConfig() *Config {
	return &Config{
		Basin:             "Frio",
		LatitudeDeg:       29.678,
		StartDate:         "2024-01-01",
		EndDate:           "2060-12-31",
		WetDryThresholdMM: 0.255,
		MinDailyDeltaC:    4.0,
		Seeds:             DefaultSeedBases(),
		DrySpell: map[int]SpellParams{
			1:  {N: 3.915162388655806, P: 0.2977526333113043, Location: 2},
			2:  {N: 5.312731046936296, P: 0.1988934314137431, Location: 2},
			3:  {N: 3.603636540370255, P: 0.3428403644909424, Location: 2},
			4:  {N: 2.704911745656023, P: 0.3295790193540502, Location: 2},
			5:  {N: 6.953055983608310, P: 0.3176279916535475, Location: 2},
			6:  {N: 5.058893398911076, P: 0.3010013234726136, Location: 2},
			7:  {N: 6.095997869386332, P: 0.3669773538213991, Location: 2},
			8:  {N: 3.177489210319657, P: 0.5094441058940438, Location: 2},
			9:  {N: 3.735472701463134, P: 0.2370562126500331, Location: 2},
			10: {N: 4.606282010303014, P: 0.2057183456563516, Location: 2},
			11: {N: 3.000000000000000, P: 0.1761191459571701, Location: 2},
			12: {N: 3.756479818110243, P: 0.4118150622443279, Location: 2},
		},
		WetSpell: map[int]SpellParams{
			1:  {N: 4.510865915360880, P: 0.6451501587119356, Location: 1},
			2:  {N: 2.475100135849106, P: 0.6696768747074860, Location: 1},
			3:  {N: 1.675569413084325, P: 0.4654584992804364, Location: 1},
			4:  {N: 2.556299700526773, P: 0.6365853084394536, Location: 1},
			5:  {N: 3.469188391831542, P: 0.6069615384053114, Location: 1},
			6:  {N: 3.115250111464483, P: 0.3393072067630571, Location: 1},
			7:  {N: 1.830988852381821, P: 0.4184422242753315, Location: 1},
			8:  {N: 1.714407941451173, P: 0.6526271751106262, Location: 1},
			9:  {N: 2.355907294215807, P: 0.3353929549624517, Location: 1},
			10: {N: 2.381103082918876, P: 0.5459329374264738, Location: 1},
			11: {N: 2.138504952307077, P: 0.6512751306213146, Location: 1},
			12: {N: 2.440332865483639, P: 0.6921787755056502, Location: 1},
		},
		Depth: map[int]DepthParams{
			1:  {A: 0.7837115409758860, C: 1.347633111170500, Loc: 0.255, Scale: 5.610609853852632},
			2:  {A: 1.062803150829027, C: 1.341118445314213, Loc: 0.255, Scale: 6.391470021107692},
			3:  {A: 1.100735454047688, C: 1.272354996142382, Loc: 0.255, Scale: 8.348663906132668},
			4:  {A: 1.101843127926503, C: 1.210980653693744, Loc: 0.255, Scale: 6.991410943221600},
			5:  {A: 1.176806796894472, C: 1.534848341733679, Loc: 0.255, Scale: 7.508790937219044},
			6:  {A: 1.494046016720638, C: 1.372390726371365, Loc: 0.255, Scale: 10.52645546925398},
			7:  {A: 1.048404563404255, C: 1.491669130947536, Loc: 0.255, Scale: 9.731293267451120},
			8:  {A: 0.8286900863678252, C: 1.618721168571233, Loc: 0.255, Scale: 8.629731575543266},
			9:  {A: 1.101651079078155, C: 1.426794294882264, Loc: 0.255, Scale: 10.01386843532882},
			10: {A: 1.536794107157059, C: 1.294664433648325, Loc: 0.255, Scale: 10.00000000000000},
			11: {A: 0.7814800192944810, C: 1.396406230690366, Loc: 0.255, Scale: 6.756062486679516},
			12: {A: 0.7951754020048494, C: 1.369403585110688, Loc: 0.255, Scale: 5.540832599808860},
		},
		MonthlyCapMM: map[int]float64{
			1: 23.5, 2: 22.9, 3: 33.4, 4: 31.2, 5: 39.6, 6: 36.3,
			7: 38.6, 8: 35.0, 9: 46.1, 10: 46.1, 11: 35.7, 12: 24.3,
		},
		WetTmaxAddC: 5.098810943474146,
		DryTmaxAddC: 6.941519835725408,
		WetTminAddC: 0.8523552116658896,
		DryTminAddC: 0.8422783217775328,
		AMatrix: [][]float64{
			{0.56219295, 0.2050754},
			{-0.03543818, 0.68296039},
		},
		BMatrix: [][]float64{
			{0.74093011, 0.0},
			{0.17681369, 0.72149121},
		},
		Events: []EventClass{
			{Name: "2-year", RecurrenceYears: 2, LowMM: 96.0, HighMM: 153.7479198867500},
			{Name: "5-year", RecurrenceYears: 5, LowMM: 141.0, HighMM: 247.6322773540412},
			{Name: "10-year", RecurrenceYears: 10, LowMM: 179.0, HighMM: 255.7052662952905},
			{Name: "25-year", RecurrenceYears: 25, LowMM: 236.0, HighMM: 290.9002966072379},
			{Name: "50-year", RecurrenceYears: 50, LowMM: 285.0, HighMM: 415.4495994011296},
			{Name: "100-year", RecurrenceYears: 100, LowMM: 343.0, HighMM: 498.1388101352216},
		},
	}
}
