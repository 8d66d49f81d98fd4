package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeStep counts advances so tests can observe scheduling.
type fakeStep struct {
	duration float64
	elapsed  float64
	advances int
	done     bool
}

func (f *fakeStep) Advance(dt float64) bool {
	f.advances++
	if f.done {
		return true
	}
	f.elapsed += dt
	f.done = f.elapsed >= f.duration
	return f.done
}

// ticksToDone drives a step with a fixed dt until done, failing the
// test if it never completes.
func ticksToDone(t *testing.T, step Step, dt float64) int {
	for ticks := 1; ticks <= 1000; ticks++ {
		if step.Advance(dt) {
			return ticks
		}
	}
	t.Fatal("step never completed")
	return 0
}

func TestParallelDurationIsMax(t *testing.T) {
	a := &fakeStep{duration: 1.0}
	b := &fakeStep{duration: 2.0}
	c := &fakeStep{duration: 0.5}

	ticks := ticksToDone(t, Parallel(a, b, c), 0.25)
	assert.Equal(t, 8, ticks) // 2.0s at 0.25s per tick
	assert.True(t, a.done)
	assert.True(t, b.done)
	assert.True(t, c.done)
}

func TestParallelSkipsFinishedChildren(t *testing.T) {
	short := &fakeStep{duration: 0.5}
	long := &fakeStep{duration: 2.0}

	ticksToDone(t, Parallel(short, long), 0.25)

	// short finishes on tick 2 and is never advanced again.
	assert.Equal(t, 2, short.advances)
	assert.Equal(t, 8, long.advances)
}

func TestParallelChildrenReachOwnEndValues(t *testing.T) {
	t1, _ := newTestTarget()
	t2, _ := newTestTarget()

	m1, err := Move(t1, Vec2{X: 10, Y: 0}, 1.0, nil)
	assert.NoError(t, err)
	m2, err := Move(t2, Vec2{X: 0, Y: 20}, 2.0, nil)
	assert.NoError(t, err)

	ticks := ticksToDone(t, Parallel(m1, m2), 0.25)
	assert.Equal(t, 8, ticks)
	assert.Equal(t, Vec2{X: 10, Y: 0}, t1.Position())
	assert.Equal(t, Vec2{X: 0, Y: 20}, t2.Position())
}

func TestSequenceDurationIsSum(t *testing.T) {
	a := &fakeStep{duration: 0.5}
	b := &fakeStep{duration: 0.5}
	c := &fakeStep{duration: 1.0}

	ticks := ticksToDone(t, Sequence(a, b, c), 0.25)
	assert.Equal(t, 8, ticks) // 2.0s at 0.25s per tick
}

func TestSequenceAdvancesOneChildPerTick(t *testing.T) {
	a := &fakeStep{duration: 0.5}
	b := &fakeStep{duration: 0.5}

	seq := Sequence(a, b)
	seq.Advance(0.25)
	assert.Equal(t, 1, a.advances)
	assert.Equal(t, 0, b.advances)

	// a completes this tick; b must not see the tick's dt.
	seq.Advance(0.25)
	assert.Equal(t, 2, a.advances)
	assert.Equal(t, 0, b.advances)

	seq.Advance(0.25)
	assert.Equal(t, 2, a.advances)
	assert.Equal(t, 1, b.advances)
}

func TestSequenceDropsResidualDt(t *testing.T) {
	a := &fakeStep{duration: 0.3}
	b := &fakeStep{duration: 0.3}

	// Each child needs two 0.2s ticks, the second of which overshoots;
	// the overshoot is dropped rather than forwarded, so the sequence
	// takes four ticks instead of three.
	ticks := ticksToDone(t, Sequence(a, b), 0.2)
	assert.Equal(t, 4, ticks)
	assert.InDelta(t, 0.4, b.elapsed, 1e-9)
}

func TestEmptyCombinatorsCompleteImmediately(t *testing.T) {
	assert.True(t, Parallel().Advance(0.1))
	assert.True(t, Sequence().Advance(0.1))
}

func TestNestedCombinators(t *testing.T) {
	a := &fakeStep{duration: 0.5}
	b := &fakeStep{duration: 1.0}
	c := &fakeStep{duration: 0.5}

	// sequence(parallel(a, b), c): 1.0s + 0.5s.
	step := Sequence(Parallel(a, b), c)
	ticks := ticksToDone(t, step, 0.25)
	assert.Equal(t, 6, ticks)
	assert.True(t, a.done)
	assert.True(t, b.done)
	assert.True(t, c.done)
}

func TestCombinatorDoneStaysDone(t *testing.T) {
	a := &fakeStep{duration: 0.25}
	p := Parallel(a)
	s := Sequence(&fakeStep{duration: 0.25})

	assert.True(t, p.Advance(0.25))
	assert.True(t, p.Advance(0.25))
	assert.Equal(t, 1, a.advances)

	assert.True(t, s.Advance(0.25))
	assert.True(t, s.Advance(0.25))
}
