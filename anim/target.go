package anim

// Property identifies an animatable attribute of a Target.
type Property int

const (
	Position Property = iota
	Size
	Opacity
	ColorProp
)

func (p Property) String() string {
	switch p {
	case Position:
		return "position"
	case Size:
		return "size"
	case Opacity:
		return "opacity"
	case ColorProp:
		return "color"
	}
	return "unknown"
}

// Target is the capability the engine animates. The engine reads the
// current value of a property once when a tween is constructed and
// writes interpolated values as the tween advances; writes may be
// deferred until Flush. The engine never owns the target.
type Target interface {
	Position() Vec2
	SetPosition(Vec2)
	Size() Vec2
	SetSize(Vec2)
	Opacity() float64
	SetOpacity(float64)
	Color() Color
	SetColor(Color)

	// Flush applies any deferred writes to the backing surface.
	Flush()
}

// Flusher is the part of Target the driver needs to settle a tick.
type Flusher interface {
	Flush()
}

// Surface receives the property writes a BatchTarget has coalesced.
// Implementations typically talk to an expensive backend such as a
// window system or a remote device.
type Surface interface {
	ApplyPosition(Vec2)
	ApplySize(Vec2)
	ApplyOpacity(float64)
	ApplyColor(Color)
}

// Committer is an optional Surface extension for backends that want a
// single commit per flush regardless of how many properties changed,
// e.g. publishing one wire frame.
type Committer interface {
	Commit()
}

// BatchTarget is a Target that batches property writes over a Surface.
// A write marks the property dirty; Flush applies the dirty properties
// once and clears the flags, so any number of writes within a tick
// collapse into at most one apply per property. Batching is purely a
// performance measure; the visible end state matches unbatched writes.
type BatchTarget struct {
	surface Surface

	position Vec2
	size     Vec2
	opacity  float64
	color    Color

	dirty [4]bool
}

// NewBatchTarget creates a BatchTarget over a surface with the given
// initial property values. The initial values are not applied; they
// seed the reads tween construction performs.
func NewBatchTarget(surface Surface, position, size Vec2, opacity float64, color Color) *BatchTarget {
	b := new(BatchTarget)
	b.surface = surface
	b.position = position
	b.size = size
	b.opacity = opacity
	b.color = color
	return b
}

// Position returns the most recently written position.
func (b *BatchTarget) Position() Vec2 { return b.position }

// SetPosition records a position write for the next Flush.
func (b *BatchTarget) SetPosition(v Vec2) {
	b.position = v
	b.dirty[Position] = true
}

// Size returns the most recently written size.
func (b *BatchTarget) Size() Vec2 { return b.size }

// SetSize records a size write for the next Flush.
func (b *BatchTarget) SetSize(v Vec2) {
	b.size = v
	b.dirty[Size] = true
}

// Opacity returns the most recently written opacity.
func (b *BatchTarget) Opacity() float64 { return b.opacity }

// SetOpacity records an opacity write for the next Flush.
func (b *BatchTarget) SetOpacity(v float64) {
	b.opacity = v
	b.dirty[Opacity] = true
}

// Color returns the most recently written colour.
func (b *BatchTarget) Color() Color { return b.color }

// SetColor records a colour write for the next Flush.
func (b *BatchTarget) SetColor(c Color) {
	b.color = c
	b.dirty[ColorProp] = true
}

// Flush applies the dirty properties to the surface in declaration
// order, clears the flags and commits if the surface supports it. A
// flush with nothing dirty does not touch the surface.
func (b *BatchTarget) Flush() {
	any := false
	for _, d := range b.dirty {
		if d {
			any = true
			break
		}
	}
	if !any {
		return
	}

	if b.dirty[Position] {
		b.surface.ApplyPosition(b.position)
	}
	if b.dirty[Size] {
		b.surface.ApplySize(b.size)
	}
	if b.dirty[Opacity] {
		b.surface.ApplyOpacity(b.opacity)
	}
	if b.dirty[ColorProp] {
		b.surface.ApplyColor(b.color)
	}
	b.dirty = [4]bool{}

	if c, ok := b.surface.(Committer); ok {
		c.Commit()
	}
}
