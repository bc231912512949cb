package core

import "time"

// DefaultTimestep is the simulation period used when none is configured.
const DefaultTimestep = time.Second / 60

// FixedStep gates simulation updates to a steady timestep. Between steps it is
// idle; ShouldStep reports the transition into a step.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep with the given period and the wall
// clock.
func NewFixedStep(step time.Duration) *FixedStep {
	return NewFixedStepWithClock(step, time.Now)
}

// NewFixedStepWithClock is NewFixedStep with an injectable clock.
func NewFixedStepWithClock(step time.Duration, now func() time.Time) *FixedStep {
	if now == nil {
		now = time.Now
	}
	fs := &FixedStep{now: now}
	fs.SetStep(step)
	fs.accumulator = fs.step
	return fs
}

// StepFromSeconds converts a timestep in seconds into a Duration, falling back
// to DefaultTimestep for non-positive values.
func StepFromSeconds(seconds float64) time.Duration {
	d := time.Duration(seconds * float64(time.Second))
	if d <= 0 {
		return DefaultTimestep
	}
	return d
}

// SetStep changes the timestep. It is safe to call from the main loop.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = DefaultTimestep
	}
	f.step = step
}

// Step returns the configured timestep.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick. At
// most one tick is granted per call; leftover time carries over.
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
