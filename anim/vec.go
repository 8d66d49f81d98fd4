package anim

import "math"

// Vec2 is a 2D vector used for positions and sizes.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the componentwise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the componentwise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns the vector scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Lerp linearly interpolates each component towards o by t. The result
// is not clamped, so eased t values outside [0,1] overshoot.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
	}
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance to another vector.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}
