// Package easing provides the library of acceleration curves used to
// shape animation progress. Every curve maps normalized time in [0,1]
// to an eased progress; the back and elastic families overshoot that
// range between the endpoints.
package easing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fogleman/ease"
)

// Func maps normalized progress in [0,1] to eased progress.
type Func func(t float64) float64

// ErrUnknownEasing indicates a name with no registered curve.
var ErrUnknownEasing = errors.New("unknown easing")

// Canonical elastic periods; the in-out variant uses a longer period so
// both halves complete a matching number of oscillations.
const (
	elasticPeriod      = 0.3
	elasticPeriodInOut = 0.45
)

// pinEnds forces f(0)=0 and f(1)=1. The expo and elastic curves are
// asymptotic and land within ~1e-3 of the endpoints; animations must
// start and finish exactly on their boundary values.
func pinEnds(f Func) Func {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return f(t)
	}
}

// ElasticIn returns an elastic ease-in curve with the given period.
func ElasticIn(period float64) Func {
	return pinEnds(Func(ease.InElasticFunction(period)))
}

// ElasticOut returns an elastic ease-out curve with the given period.
func ElasticOut(period float64) Func {
	return pinEnds(Func(ease.OutElasticFunction(period)))
}

// ElasticInOut returns an elastic ease-in-out curve with the given period.
func ElasticInOut(period float64) Func {
	return pinEnds(Func(ease.InOutElasticFunction(period)))
}

// Direct function values for callers that want a curve without going
// through the registry.
var (
	Linear Func = ease.Linear

	InQuad    Func = ease.InQuad
	OutQuad   Func = ease.OutQuad
	InOutQuad Func = ease.InOutQuad

	InCubic    Func = ease.InCubic
	OutCubic   Func = ease.OutCubic
	InOutCubic Func = ease.InOutCubic

	InQuart    Func = ease.InQuart
	OutQuart   Func = ease.OutQuart
	InOutQuart Func = ease.InOutQuart

	InQuint    Func = ease.InQuint
	OutQuint   Func = ease.OutQuint
	InOutQuint Func = ease.InOutQuint

	InSine    Func = ease.InSine
	OutSine   Func = ease.OutSine
	InOutSine Func = ease.InOutSine

	InExpo    Func = pinEnds(ease.InExpo)
	OutExpo   Func = pinEnds(ease.OutExpo)
	InOutExpo Func = pinEnds(ease.InOutExpo)

	InCirc    Func = ease.InCirc
	OutCirc   Func = ease.OutCirc
	InOutCirc Func = ease.InOutCirc

	InBack    Func = ease.InBack
	OutBack   Func = ease.OutBack
	InOutBack Func = ease.InOutBack

	InElastic    Func = ElasticIn(elasticPeriod)
	OutElastic   Func = ElasticOut(elasticPeriod)
	InOutElastic Func = ElasticInOut(elasticPeriodInOut)

	InBounce    Func = ease.InBounce
	OutBounce   Func = ease.OutBounce
	InOutBounce Func = ease.InOutBounce
)

var registry = map[string]Func{
	"linear": Linear,

	// Short aliases for the quadratic family.
	"ease_in":     InQuad,
	"ease_out":    OutQuad,
	"ease_in_out": InOutQuad,

	"ease_in_quad":     InQuad,
	"ease_out_quad":    OutQuad,
	"ease_in_out_quad": InOutQuad,

	"ease_in_cubic":     InCubic,
	"ease_out_cubic":    OutCubic,
	"ease_in_out_cubic": InOutCubic,

	"ease_in_quart":     InQuart,
	"ease_out_quart":    OutQuart,
	"ease_in_out_quart": InOutQuart,

	"ease_in_quint":     InQuint,
	"ease_out_quint":    OutQuint,
	"ease_in_out_quint": InOutQuint,

	"ease_in_sine":     InSine,
	"ease_out_sine":    OutSine,
	"ease_in_out_sine": InOutSine,

	"ease_in_expo":     InExpo,
	"ease_out_expo":    OutExpo,
	"ease_in_out_expo": InOutExpo,

	"ease_in_circ":     InCirc,
	"ease_out_circ":    OutCirc,
	"ease_in_out_circ": InOutCirc,

	"ease_in_back":     InBack,
	"ease_out_back":    OutBack,
	"ease_in_out_back": InOutBack,

	"ease_in_elastic":     InElastic,
	"ease_out_elastic":    OutElastic,
	"ease_in_out_elastic": InOutElastic,

	"ease_in_bounce":     InBounce,
	"ease_out_bounce":    OutBounce,
	"ease_in_out_bounce": InOutBounce,
}

// Names returns the registered curve names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Resolve looks up a curve by name. Names are case-insensitive and may
// use dashes or spaces in place of underscores.
func Resolve(name string) (Func, error) {
	normalized := strings.ToLower(name)
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	f, ok := registry[normalized]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return f, nil
}
