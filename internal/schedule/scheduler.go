// Package schedule drives a tick callback.
package schedule

import (
	"context"
	"fmt"
	"time"
)

// DefaultFPS is the reference tick rate.
const DefaultFPS = 1000

// Scheduler invokes tick repeatedly until it is done or ctx is canceled.
// Ticks never overlap.
type Scheduler interface {
	Run(ctx context.Context, tick func()) error
}

// Ticker invokes tick at a fixed wall-clock period. A tick that overruns the
// period delays the next one; missed ticks are dropped, not replayed.
type Ticker struct {
	Period time.Duration
	// Limit stops the ticker after that many ticks. Zero runs until ctx is
	// canceled.
	Limit uint64
}

// Every returns a Ticker firing fps times per second.
func Every(fps int) Ticker {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Ticker{Period: time.Second / time.Duration(fps)}
}

// Run implements Scheduler. It returns nil once Limit ticks ran and ctx.Err()
// on cancellation.
func (t Ticker) Run(ctx context.Context, tick func()) error {
	if t.Period <= 0 {
		return fmt.Errorf("invalid tick period: %v", t.Period)
	}
	tk := time.NewTicker(t.Period)
	defer tk.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C:
			tick()
			n++
			if t.Limit > 0 && n >= t.Limit {
				return nil
			}
		}
	}
}

// Steps invokes tick N times back to back without waiting.
type Steps struct {
	N uint64
}

// Run implements Scheduler. Cancellation is checked between ticks.
func (s Steps) Run(ctx context.Context, tick func()) error {
	for i := uint64(0); i < s.N; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		tick()
	}
	return nil
}
