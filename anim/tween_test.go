package anim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/winfx/easing"
)

func TestMoveReachesEndExactly(t *testing.T) {
	target, _ := newTestTarget()
	tw, err := Move(target, Vec2{X: 10, Y: 5}, 1.0, easing.Linear)
	assert.NoError(t, err)

	assert.False(t, tw.Advance(0.25))
	assert.Equal(t, Vec2{X: 2.5, Y: 1.25}, target.Position())
	assert.False(t, tw.Advance(0.25))
	assert.False(t, tw.Advance(0.25))

	// Done exactly when the accumulated dt crosses the duration, with
	// the end value written verbatim.
	assert.True(t, tw.Advance(0.25))
	assert.Equal(t, Vec2{X: 10, Y: 5}, target.Position())
}

func TestAdvanceAfterDoneIsNoop(t *testing.T) {
	target, _ := newTestTarget()
	tw, err := Move(target, Vec2{X: 10, Y: 0}, 0.5, nil)
	assert.NoError(t, err)

	assert.True(t, tw.Advance(1.0))
	target.SetPosition(Vec2{X: -1, Y: -1})

	assert.True(t, tw.Advance(1.0))
	assert.Equal(t, Vec2{X: -1, Y: -1}, target.Position())
}

func TestZeroDurationAppliesEndOnce(t *testing.T) {
	target, surface := newTestTarget()
	tw, err := Fade(target, 0.25, 0, nil)
	assert.NoError(t, err)

	assert.True(t, tw.Advance(0))
	target.Flush()

	assert.Equal(t, []float64{0.25}, surface.opacities)
	assert.Equal(t, 0.25, target.Opacity())
}

func TestNegativeDurationRejected(t *testing.T) {
	target, surface := newTestTarget()
	_, err := Move(target, Vec2{X: 1, Y: 1}, -0.1, nil)
	assert.True(t, errors.Is(err, ErrInvalidDuration))
	assert.Empty(t, surface.positions)
}

func TestMoveByAndResizeBy(t *testing.T) {
	target, _ := newTestTarget()
	target.SetPosition(Vec2{X: 10, Y: 10})

	tw, err := MoveBy(target, Vec2{X: 5, Y: -5}, 0, nil)
	assert.NoError(t, err)
	tw.Advance(0)
	assert.Equal(t, Vec2{X: 15, Y: 5}, target.Position())

	tw, err = ResizeBy(target, Vec2{X: -20, Y: 20}, 0, nil)
	assert.NoError(t, err)
	tw.Advance(0)
	assert.Equal(t, Vec2{X: 80, Y: 120}, target.Size())
}

func TestOpacityClampedUnderOvershoot(t *testing.T) {
	target, _ := newTestTarget()
	target.SetOpacity(0)

	tw, err := Fade(target, 1.0, 1.0, easing.OutBack)
	assert.NoError(t, err)

	for done := false; !done; {
		done = tw.Advance(0.05)
		opacity := target.Opacity()
		assert.GreaterOrEqual(t, opacity, 0.0)
		assert.LessOrEqual(t, opacity, 1.0)
	}
	assert.Equal(t, 1.0, target.Opacity())
}

func TestPositionOvershootNotClamped(t *testing.T) {
	target, _ := newTestTarget()

	tw, err := Move(target, Vec2{X: 10, Y: 0}, 1.0, easing.OutBack)
	assert.NoError(t, err)

	overshot := false
	for done := false; !done; {
		done = tw.Advance(0.05)
		if target.Position().X > 10 {
			overshot = true
		}
	}
	assert.True(t, overshot, "back easing should carry position past the end value")
	assert.Equal(t, Vec2{X: 10, Y: 0}, target.Position())
}

func TestColorTween(t *testing.T) {
	target, _ := newTestTarget()
	target.SetColor(RGBA(0, 0, 0, 0))

	end := RGBA(1, 0.5, 0, 1)
	tw, err := ColorTo(target, end, 1.0, easing.Linear)
	assert.NoError(t, err)

	tw.Advance(0.5)
	mid := target.Color()
	assert.InDelta(t, 0.5, mid.C.R, 1e-9)
	assert.InDelta(t, 0.25, mid.C.G, 1e-9)
	assert.InDelta(t, 0.0, mid.C.B, 1e-9)
	assert.InDelta(t, 0.5, mid.A, 1e-9)

	tw.Advance(0.5)
	assert.Equal(t, end, target.Color())
}

func TestFadeInStartsTransparent(t *testing.T) {
	target, _ := newTestTarget()
	target.SetOpacity(0.8)

	tw, err := FadeIn(target, 1.0, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, target.Opacity())

	tw.Advance(0.5)
	assert.InDelta(t, 0.5, target.Opacity(), 1e-9)
	tw.Advance(0.5)
	assert.Equal(t, 1.0, target.Opacity())
}

func TestWait(t *testing.T) {
	tw, err := Wait(0.5)
	assert.NoError(t, err)
	assert.False(t, tw.Advance(0.25))
	assert.True(t, tw.Advance(0.25))
	assert.True(t, tw.Advance(0.25))
}
