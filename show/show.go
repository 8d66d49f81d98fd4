// Package show compiles a YAML choreography description into an
// animation step tree.
package show

import (
	"fmt"

	"github.com/matt-g-everett/winfx/anim"
	"github.com/matt-g-everett/winfx/easing"
)

// Build compiles a list of acts into a single step: a sequence of the
// top-level acts, each of which may nest parallel and sequence groups
// arbitrarily. All validation happens here, before anything runs:
// unknown actions, unknown window names, bad easing names and bad
// colours are reported as errors and no target is touched.
//
// Tweens sample their start values when Build runs, not when they reach
// the front of a sequence, so acts that chain animations of the same
// property on the same window should be built one act at a time.
func Build(acts []Act, targets map[string]anim.Target) (anim.Step, error) {
	steps, err := buildAll(acts, targets)
	if err != nil {
		return nil, err
	}
	return anim.Sequence(steps...), nil
}

func buildAll(acts []Act, targets map[string]anim.Target) ([]anim.Step, error) {
	steps := make([]anim.Step, 0, len(acts))
	for i, act := range acts {
		step, err := build(act, targets)
		if err != nil {
			return nil, fmt.Errorf("act %d (%s): %w", i, act.Action, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func build(act Act, targets map[string]anim.Target) (anim.Step, error) {
	switch act.Action {
	case "parallel":
		steps, err := buildAll(act.Steps, targets)
		if err != nil {
			return nil, err
		}
		return anim.Parallel(steps...), nil

	case "sequence":
		steps, err := buildAll(act.Steps, targets)
		if err != nil {
			return nil, err
		}
		return anim.Sequence(steps...), nil

	case "wait":
		return anim.Wait(act.Duration)

	case "move", "resize", "fade", "color":
		target, ok := targets[act.Window]
		if !ok {
			return nil, fmt.Errorf("unknown window %q", act.Window)
		}
		fn, err := resolveEase(act.Ease)
		if err != nil {
			return nil, err
		}

		switch act.Action {
		case "move":
			to, err := toVec(act.To)
			if err != nil {
				return nil, err
			}
			return anim.Move(target, to, act.Duration, fn)
		case "resize":
			to, err := toVec(act.To)
			if err != nil {
				return nil, err
			}
			return anim.Resize(target, to, act.Duration, fn)
		case "fade":
			return anim.Fade(target, act.Opacity, act.Duration, fn)
		default:
			c, err := anim.Hex(act.Color)
			if err != nil {
				return nil, err
			}
			return anim.ColorTo(target, c, act.Duration, fn)
		}

	default:
		return nil, fmt.Errorf("unknown action %q", act.Action)
	}
}

func resolveEase(name string) (easing.Func, error) {
	if name == "" {
		return easing.Linear, nil
	}
	return easing.Resolve(name)
}

func toVec(to []float64) (anim.Vec2, error) {
	if len(to) != 2 {
		return anim.Vec2{}, fmt.Errorf("to wants [x, y], got %v", to)
	}
	return anim.Vec2{X: to[0], Y: to[1]}, nil
}
