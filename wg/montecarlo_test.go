package wg

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectSink stores each result keyed by realization index. Safe for
// concurrent workers.
type collectSink struct {
	mu      sync.Mutex
	results map[int]*Result
}

func newCollectSink() *collectSink {
	return &collectSink{results: make(map[int]*Result)}
}

func (c *collectSink) sink(res *Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.results[res.Index]; dup {
		return fmt.Errorf("realization %d delivered twice", res.Index)
	}
	c.results[res.Index] = res
	return nil
}

func TestCoordinator_ParallelMatchesSerial(t *testing.T) {
	cfg := testConfig(t, "2024-01-01", "2024-12-30")
	store := testStore(t)

	serial := newCollectSink()
	sum, err := (&Coordinator{Config: cfg, Store: store, Workers: 1}).Run(1, 6, serial.sink)
	require.NoError(t, err)
	assert.Equal(t, 6, sum.Succeeded)

	parallel := newCollectSink()
	sum, err = (&Coordinator{Config: cfg, Store: store, Workers: 4}).Run(1, 6, parallel.sink)
	require.NoError(t, err)
	assert.Equal(t, 6, sum.Succeeded)
	assert.Zero(t, sum.Failed)

	require.Len(t, parallel.results, 6)
	for idx := 1; idx <= 6; idx++ {
		require.Contains(t, serial.results, idx)
		require.Contains(t, parallel.results, idx)
		assert.Equal(t, serial.results[idx].Records, parallel.results[idx].Records,
			"realization %d differs across worker counts", idx)
	}
}

func TestCoordinator_ZeroCountIsNoop(t *testing.T) {
	cfg := testConfig(t, "2024-01-01", "2024-01-31")
	sum, err := (&Coordinator{Config: cfg, Store: testStore(t), Workers: 4}).Run(1, 0, nil)
	require.NoError(t, err)
	assert.Zero(t, sum.Requested)
	assert.Zero(t, sum.Succeeded)
}

func TestCoordinator_ConstructionFailuresAreCounted(t *testing.T) {
	cfg := testConfig(t, "2024-01-01", "2024-03-31")
	// Passes Validate but fails event-process construction in every worker.
	cfg.Events = []EventClass{{Name: "too-soon", RecurrenceYears: 1, LowMM: 10, HighMM: 20}}

	sum, err := (&Coordinator{Config: cfg, Store: testStore(t), Workers: 3}).Run(1, 5, nil)
	require.Error(t, err)
	assert.Equal(t, 5, sum.Failed)
	assert.Zero(t, sum.Succeeded)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sum.FailedIndices)
}

func TestCoordinator_ToleratedFailuresDoNotError(t *testing.T) {
	cfg := testConfig(t, "2024-01-01", "2024-03-31")
	cfg.Events = []EventClass{{Name: "too-soon", RecurrenceYears: 1, LowMM: 10, HighMM: 20}}
	cfg.MaxFailures = 5

	sum, err := (&Coordinator{Config: cfg, Store: testStore(t), Workers: 2}).Run(1, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Failed)
}

func TestCoordinator_SinkErrorsCountAsFailures(t *testing.T) {
	cfg := testConfig(t, "2024-01-01", "2024-01-31")
	bad := func(res *Result) error {
		if res.Index == 3 {
			return fmt.Errorf("disk full")
		}
		return nil
	}
	sum, err := (&Coordinator{Config: cfg, Store: testStore(t), Workers: 2}).Run(1, 4, bad)
	require.Error(t, err)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, []int{3}, sum.FailedIndices)
	assert.Equal(t, 3, sum.Succeeded)
}
