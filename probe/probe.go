// Package probe runs the fixed counter loop workload and times it.
// The workload alternates +1 and -1 on a float64 accumulator based on
// loop-index parity, so the result is deterministic and only the elapsed
// time varies between runs.
package probe

import "time"

// Iterations is the fixed number of loop iterations per run.
const Iterations = 10_000_000

// Result holds the finalized accumulator and the measured loop duration.
type Result struct {
	Count   float64
	Elapsed time.Duration
}

// Clock is a point-in-time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns time.Now, which carries a monotonic reading.
func (systemClock) Now() time.Time { return time.Now() }

// Probe times a single pass of the counter loop.
type Probe struct {
	clock Clock
}

// New creates a Probe reading time from clock.
// A nil clock selects the system clock.
func New(clock Clock) *Probe {
	if clock == nil {
		clock = systemClock{}
	}

	return &Probe{clock: clock}
}

// Run reads the clock, runs Accumulate(Iterations), reads the clock again
// and returns both values.
func (p *Probe) Run() Result {
	start := p.clock.Now()
	count := Accumulate(Iterations)
	end := p.clock.Now()

	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	return Result{Count: count, Elapsed: elapsed}
}

// Accumulate applies +1.0 on even indices and -1.0 on odd indices for
// every i in [0, n), starting from 0.0.
func Accumulate(n int) float64 {
	count := 0.0

	for i := 0; i < n; i++ {
		if i%2 == 0 {
			count++
		} else {
			count--
		}
	}

	return count
}
