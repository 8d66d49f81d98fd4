package anim

import (
	"time"

	"github.com/matt-g-everett/winfx/easing"
)

// Clock supplies the seconds elapsed since its previous tick. The
// engine never reads wall-clock time itself; all timing flows through
// a Clock, so a deterministic fake makes the whole engine testable.
type Clock interface {
	Tick() float64
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() float64

// Tick implements Clock.
func (f ClockFunc) Tick() float64 { return f() }

// Pump lets the host process platform or input events between ticks.
// The blocking driver pumps on every iteration so the host stays
// responsive for the whole length of an animation.
type Pump interface {
	PumpEvents()
}

// PumpFunc adapts a function to the Pump interface.
type PumpFunc func()

// PumpEvents implements Pump.
func (f PumpFunc) PumpEvents() { f() }

// A Driver advances steps in lockstep with a clock. It supports two
// styles with one code path: Run blocks until a step completes, while
// Advance performs a single externally-timed tick for callers that own
// their frame loop. Targets registered with Track are flushed once per
// tick, after the step has been advanced, so all property writes of a
// tick coalesce into one flush each.
type Driver struct {
	clock   Clock
	pump    Pump
	targets []Flusher
}

// NewDriver creates a Driver. The pump may be nil when there is no
// host event loop to service.
func NewDriver(clock Clock, pump Pump) *Driver {
	d := new(Driver)
	d.clock = clock
	d.pump = pump
	return d
}

// Track registers targets to be flushed once per tick.
func (d *Driver) Track(targets ...Flusher) {
	d.targets = append(d.targets, targets...)
}

// Advance performs one tick of the given step: advance by dt, then
// flush the tracked targets. It reports whether the step has completed.
func (d *Driver) Advance(step Step, dt float64) bool {
	done := step.Advance(dt)
	for _, t := range d.targets {
		t.Flush()
	}
	return done
}

// Run drives a step to completion, sourcing dt from the clock and
// pumping host events every tick, including the final one.
func (d *Driver) Run(step Step) {
	for {
		dt := d.clock.Tick()
		done := d.Advance(step, dt)
		if d.pump != nil {
			d.pump.PumpEvents()
		}
		if done {
			return
		}
	}
}

// Move animates a target's position and blocks until complete. An
// invalid duration fails before any frame runs, leaving the target
// untouched.
func (d *Driver) Move(target Target, to Vec2, duration float64, fn easing.Func) error {
	return d.runTween(Move(target, to, duration, fn))
}

// Resize animates a target's size and blocks until complete.
func (d *Driver) Resize(target Target, to Vec2, duration float64, fn easing.Func) error {
	return d.runTween(Resize(target, to, duration, fn))
}

// Fade animates a target's opacity and blocks until complete.
func (d *Driver) Fade(target Target, to float64, duration float64, fn easing.Func) error {
	return d.runTween(Fade(target, to, duration, fn))
}

// ColorTo animates a target's colour and blocks until complete.
func (d *Driver) ColorTo(target Target, to Color, duration float64, fn easing.Func) error {
	return d.runTween(ColorTo(target, to, duration, fn))
}

// Wait blocks for the given duration while continuing to tick the
// clock, flush targets and pump host events.
func (d *Driver) Wait(duration float64) error {
	return d.runTween(Wait(duration))
}

func (d *Driver) runTween(tw *Tween, err error) error {
	if err != nil {
		return err
	}
	d.Run(tw)
	return nil
}

// FrameClock is a real-time Clock that caps the tick rate by sleeping
// out the remainder of each frame. The first tick returns 0 so an
// animation's first frame shows its start state.
type FrameClock struct {
	frame time.Duration
	last  time.Time
}

// NewFrameClock creates a FrameClock targeting the given frame rate.
func NewFrameClock(fps float64) *FrameClock {
	c := new(FrameClock)
	c.frame = time.Duration(float64(time.Second) / fps)
	return c
}

// Tick implements Clock.
func (c *FrameClock) Tick() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	if elapsed < c.frame {
		time.Sleep(c.frame - elapsed)
		now = time.Now()
		elapsed = now.Sub(c.last)
	}
	c.last = now
	return elapsed.Seconds()
}
