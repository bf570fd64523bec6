package core

import "time"

// FixedStep paces repeated work at a steady interval. The viewer uses it to
// drive auto-play; the engine itself owns no timers.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedInterval constructs a FixedStep that fires once per interval.
func NewFixedInterval(d time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(d)
	return fs
}

// SetInterval changes the time between ticks. Non-positive values fall back
// to one second.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second
	}
	f.step = d
}

// Interval reports the current time between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart forgets accumulated time so the next tick is a full interval away.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
