package wg

import (
	"time"

	"github.com/hydrowx/wxgen/wg/dist"
)

// EventEntry is one realized extreme event.
type EventEntry struct {
	Date        time.Time
	MagnitudeMM float64
}

// EventSeries is one return-period class's independent point process: its
// bound samplers, the absolute day offset of the next trigger, and the
// append-only log of realized events.
type EventSeries struct {
	Name string

	proc *dist.EventProcess

	// NextTriggerDay is the absolute day offset, from the realization start,
	// at which the class next fires. Once re-armed it is always at or beyond
	// the current elapsed-day count.
	NextTriggerDay float64
	// NextMagnitudeMM is the pre-drawn magnitude of the pending event.
	NextMagnitudeMM float64

	Log []EventEntry
}

// rearm schedules the next event relative to the current elapsed day, not
// the old trigger time, and pre-draws its magnitude.
func (s *EventSeries) rearm(elapsedDay int) {
	s.NextTriggerDay = float64(elapsedDay) + s.proc.NextArrivalDays()
	s.NextMagnitudeMM = s.proc.NextMagnitudeMM()
}

// EventTracker owns all extreme-event series for one realization.
type EventTracker struct {
	Series []*EventSeries
}

// NewEventTracker builds one series per configured class. Class ordinals
// start at 1; each class's recurrence and magnitude streams are seeded with
// the respective base plus the ordinal. Every series is armed immediately
// with its first interarrival offset and magnitude.
func NewEventTracker(classes []EventClass, seeds SeedBases) (*EventTracker, error) {
	t := &EventTracker{Series: make([]*EventSeries, 0, len(classes))}
	for i, cls := range classes {
		ordinal := int64(i + 1)
		proc, err := dist.NewEventProcess(cls.Name, cls.RecurrenceYears, cls.LowMM, cls.HighMM,
			dist.NewSource(seeds.EventRecurrence+ordinal),
			dist.NewSource(seeds.EventMagnitude+ordinal))
		if err != nil {
			return nil, err
		}
		s := &EventSeries{Name: cls.Name, proc: proc}
		s.NextTriggerDay = proc.NextArrivalDays()
		s.NextMagnitudeMM = proc.NextMagnitudeMM()
		t.Series = append(t.Series, s)
	}
	return t, nil
}

// Trigger fires every class whose pending offset has passed the current
// elapsed-day count, logging the event at date and re-arming the class. The
// total is the sum of all magnitudes triggered today; fired distinguishes a
// genuine zero-magnitude event day from no class firing at all.
func (t *EventTracker) Trigger(elapsedDay int, date time.Time) (total float64, fired bool) {
	for _, s := range t.Series {
		if s.NextTriggerDay < float64(elapsedDay) {
			total += s.NextMagnitudeMM
			fired = true
			s.Log = append(s.Log, EventEntry{Date: date, MagnitudeMM: s.NextMagnitudeMM})
			s.rearm(elapsedDay)
		}
	}
	return total, fired
}
