package wg

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hydrowx/wxgen/wg/climo"
)

// Sink receives each completed realization's result. Writers live outside
// the engine; the coordinator only guarantees the sink is called at most
// once per realization index, possibly from concurrent workers.
type Sink func(*Result) error

// Summary aggregates per-realization statuses for one Monte Carlo run.
type Summary struct {
	Requested     int
	Succeeded     int
	Failed        int
	FailedIndices []int
}

// Coordinator fans realization indices out to a fixed-size worker pool.
// Workers share only the immutable config and climatology store; each one
// constructs a complete, independently seeded realization, so no locking is
// needed around engine state. A failure in one realization never blocks or
// corrupts its siblings.
type Coordinator struct {
	Config  *Config
	Store   *climo.Store
	Workers int
}

// worker consumes indices until the channel closes. Panics inside a
// realization are recovered here, at the worker boundary, and reported as
// that index's failure.
func (c *Coordinator) worker(indices <-chan int, failures chan<- int, sink Sink, wg *sync.WaitGroup) {
	defer wg.Done()
	for idx := range indices {
		if err := c.runOne(idx, sink); err != nil {
			logrus.Errorf("realization %d failed: %v", idx, err)
			failures <- idx
		}
	}
}

func (c *Coordinator) runOne(idx int, sink Sink) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("realization %d panicked: %v", idx, p)
		}
	}()
	r, err := NewRealization(c.Config, c.Store, idx)
	if err != nil {
		return err
	}
	res, err := r.Run()
	if err != nil {
		return err
	}
	if sink != nil {
		if err := sink(res); err != nil {
			return fmt.Errorf("realization %d output: %w", idx, err)
		}
	}
	return nil
}

// Run simulates realizations startIndex through startIndex+count-1 and
// returns the aggregate summary. The error is non-nil when the failure count
// exceeds the configured tolerance; successful realizations' outputs are
// still delivered to the sink either way.
func (c *Coordinator) Run(startIndex, count int, sink Sink) (Summary, error) {
	sum := Summary{Requested: count}
	if count <= 0 {
		return sum, nil
	}
	workers := c.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > count {
		workers = count
	}
	logrus.Infof("simulating realizations %d through %d on %d workers",
		startIndex, startIndex+count-1, workers)

	indices := make(chan int, workers)
	failures := make(chan int, count)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go c.worker(indices, failures, sink, &wg)
	}
	for idx := startIndex; idx < startIndex+count; idx++ {
		indices <- idx
	}
	close(indices)
	wg.Wait()
	close(failures)

	for idx := range failures {
		sum.FailedIndices = append(sum.FailedIndices, idx)
	}
	sort.Ints(sum.FailedIndices)
	sum.Failed = len(sum.FailedIndices)
	sum.Succeeded = count - sum.Failed

	if sum.Failed > c.Config.MaxFailures {
		return sum, fmt.Errorf("%d of %d realizations failed (tolerance %d)",
			sum.Failed, count, c.Config.MaxFailures)
	}
	return sum, nil
}
