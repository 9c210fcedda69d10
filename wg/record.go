package wg

import "time"

// WeatherState is the mutually exclusive per-day wet/dry classification.
// It is owned by the daily loop and toggles only at spell exhaustion.
type WeatherState int

const (
	// Dry days record exactly zero precipitation.
	Dry WeatherState = iota
	// Wet days record the sampled base depth or a triggered event sum.
	Wet
)

// String returns the lower-case state keyword.
func (s WeatherState) String() string {
	if s == Wet {
		return "wet"
	}
	return "dry"
}

// DailyRecord is one simulated day's output tuple.
type DailyRecord struct {
	TmaxC    float64
	TminC    float64
	PrecipMM float64
}

// Result is one completed realization's output: the fixed-length daily
// buffer and the extreme-event series (logs plus pending pre-draws). It is
// handed back to the coordinator, which forwards it to the output sink.
type Result struct {
	Index   int
	Start   time.Time
	End     time.Time
	Records []DailyRecord
	Events  []*EventSeries
}

// Day returns the calendar date of record i.
func (r *Result) Day(i int) time.Time {
	return r.Start.AddDate(0, 0, i)
}
