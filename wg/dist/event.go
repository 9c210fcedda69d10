package dist

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// daysPerYear converts Poisson interarrival draws from years to days.
const daysPerYear = 365.25

// minRecurrenceYears is the smallest admissible mean recurrence interval.
// Shorter intervals belong to the base wet-day depth process, not the
// extreme-event overlay.
const minRecurrenceYears = 2

// EventProcess is the stochastic kernel of one extreme-event return-period
// class: a Poisson interarrival time in years and a Uniform magnitude in mm.
// Arrival and magnitude are bound to separate sources so that consuming one
// never perturbs the other's sequence.
type EventProcess struct {
	name    string
	poisson distuv.Poisson
	uniform distuv.Uniform
}

// NewEventProcess validates the class parameters and binds the interarrival
// and magnitude draws to their sources.
func NewEventProcess(name string, recurrenceYears int, lowMag, highMag float64, recurSrc, magSrc rand.Source) (*EventProcess, error) {
	if recurrenceYears < minRecurrenceYears {
		return nil, fmt.Errorf("%w: event %q recurrence %d yr must be >= %d",
			ErrInvalidParam, name, recurrenceYears, minRecurrenceYears)
	}
	if lowMag >= highMag || math.IsNaN(lowMag) || math.IsNaN(highMag) {
		return nil, fmt.Errorf("%w: event %q magnitude range [%g, %g) is degenerate",
			ErrInvalidParam, name, lowMag, highMag)
	}
	return &EventProcess{
		name:    name,
		poisson: distuv.Poisson{Lambda: float64(recurrenceYears), Src: recurSrc},
		uniform: distuv.Uniform{Min: lowMag, Max: highMag, Src: magSrc},
	}, nil
}

// Name returns the descriptive name given at construction.
func (e *EventProcess) Name() string { return e.name }

// NextArrivalDays draws the offset in decimal days until the next event,
// measured forward from the moment of the draw.
func (e *EventProcess) NextArrivalDays() float64 {
	return e.poisson.Rand() * daysPerYear
}

// NextMagnitudeMM draws the magnitude in mm for the next event.
func (e *EventProcess) NextMagnitudeMM() float64 {
	return e.uniform.Rand()
}
