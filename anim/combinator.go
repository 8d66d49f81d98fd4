package anim

// Parallel combines steps into one step that advances all of them with
// the same dt each tick and completes when every child has completed,
// so its effective duration is the longest child duration. Finished
// children are skipped to avoid redundant writes. If children write the
// same property of the same target, the last child in argument order
// wins for that tick; avoiding such overlap is the caller's
// responsibility. A Parallel with no children completes immediately;
// an empty group is a valid degenerate choreography, not an error.
func Parallel(steps ...Step) Step {
	p := new(parallel)
	p.children = steps
	p.finished = make([]bool, len(steps))
	return p
}

type parallel struct {
	children []Step
	finished []bool
}

func (p *parallel) Advance(dt float64) bool {
	done := true
	for i, child := range p.children {
		if p.finished[i] {
			continue
		}
		if child.Advance(dt) {
			p.finished[i] = true
		} else {
			done = false
		}
	}
	return done
}

// Sequence combines steps into one step that advances them one at a
// time, in order, completing when the last child completes, so its
// effective duration is the sum of the child durations. Each tick
// advances only the current child; when that child finishes, the rest
// of the tick's dt is dropped and the next child starts on the next
// tick. Under coarse dt a sequence can therefore run up to one tick
// longer than the exact sum. A Sequence with no children completes
// immediately; an empty group is a valid degenerate choreography, not
// an error.
func Sequence(steps ...Step) Step {
	s := new(sequence)
	s.children = steps
	return s
}

type sequence struct {
	children []Step
	cursor   int
}

func (s *sequence) Advance(dt float64) bool {
	if s.cursor >= len(s.children) {
		return true
	}
	if s.children[s.cursor].Advance(dt) {
		s.cursor++
	}
	return s.cursor >= len(s.children)
}
