package anim

import (
	"errors"
	"fmt"

	"github.com/matt-g-everett/winfx/easing"
)

// ErrInvalidDuration indicates a negative animation duration.
var ErrInvalidDuration = errors.New("invalid duration")

// A Tween animates one property of a Target from its value at
// construction time to an end value over a fixed duration. It is a
// small state machine: each Advance accumulates elapsed time, maps
// normalized progress through the easing curve and writes the
// interpolated value to the target. On the tick that reaches the
// duration the exact end value is written, so no interpolation error
// remains at completion. A zero duration completes on the first
// Advance, applying the end value once.
type Tween struct {
	duration float64
	elapsed  float64
	ease     easing.Func
	apply    func(eased float64)
	finish   func()
	done     bool
}

func newTween(duration float64, fn easing.Func, apply func(eased float64), finish func()) (*Tween, error) {
	if duration < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}
	if fn == nil {
		fn = easing.Linear
	}

	tw := new(Tween)
	tw.duration = duration
	tw.ease = fn
	tw.apply = apply
	tw.finish = finish
	return tw, nil
}

// Advance moves the tween forward by dt seconds.
func (tw *Tween) Advance(dt float64) bool {
	if tw.done {
		return true
	}

	tw.elapsed += dt
	if tw.elapsed >= tw.duration {
		tw.finish()
		tw.done = true
		return true
	}

	tw.apply(tw.ease(tw.elapsed / tw.duration))
	return false
}

// Move animates a target's position to an absolute point.
func Move(target Target, to Vec2, duration float64, fn easing.Func) (*Tween, error) {
	from := target.Position()
	return newTween(duration, fn,
		func(eased float64) { target.SetPosition(from.Lerp(to, eased)) },
		func() { target.SetPosition(to) })
}

// MoveBy animates a target's position by a relative offset.
func MoveBy(target Target, delta Vec2, duration float64, fn easing.Func) (*Tween, error) {
	return Move(target, target.Position().Add(delta), duration, fn)
}

// Resize animates a target's size to an absolute size.
func Resize(target Target, to Vec2, duration float64, fn easing.Func) (*Tween, error) {
	from := target.Size()
	return newTween(duration, fn,
		func(eased float64) { target.SetSize(from.Lerp(to, eased)) },
		func() { target.SetSize(to) })
}

// ResizeBy animates a target's size by a relative amount.
func ResizeBy(target Target, delta Vec2, duration float64, fn easing.Func) (*Tween, error) {
	return Resize(target, target.Size().Add(delta), duration, fn)
}

// Fade animates a target's opacity. Interpolated values are clamped to
// [0,1] at write time, so overshooting curves cannot push opacity out
// of range; the interpolation itself is not clamped.
func Fade(target Target, to float64, duration float64, fn easing.Func) (*Tween, error) {
	from := target.Opacity()
	return newTween(duration, fn,
		func(eased float64) { target.SetOpacity(clamp01(from + (to-from)*eased)) },
		func() { target.SetOpacity(clamp01(to)) })
}

// FadeIn snaps a target to fully transparent and fades it to opaque.
func FadeIn(target Target, duration float64, fn easing.Func) (*Tween, error) {
	target.SetOpacity(0)
	return Fade(target, 1, duration, fn)
}

// FadeOut fades a target to fully transparent.
func FadeOut(target Target, duration float64, fn easing.Func) (*Tween, error) {
	return Fade(target, 0, duration, fn)
}

// ColorTo animates a target's colour using the colour type's own
// interpolation, alpha included.
func ColorTo(target Target, to Color, duration float64, fn easing.Func) (*Tween, error) {
	from := target.Color()
	return newTween(duration, fn,
		func(eased float64) { target.SetColor(from.Lerp(to, eased)) },
		func() { target.SetColor(to) })
}

// Wait is a step that does nothing for the given duration. Useful for
// pauses inside a Sequence.
func Wait(duration float64) (*Tween, error) {
	return newTween(duration, easing.Linear,
		func(eased float64) {},
		func() {})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
