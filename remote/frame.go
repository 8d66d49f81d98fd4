// Package remote drives winrx display devices over MQTT. A Window is
// an animation target whose batched property writes are published as
// one binary frame per tick, and a Control subscription feeds device
// commands into the driver's event pump.
package remote

import (
	"encoding/binary"
	"math"

	"github.com/matt-g-everett/winfx/anim"
)

// Frame represents the wire state of a window on a winrx device.
type Frame struct {
	ID       uint16
	Position anim.Vec2
	Size     anim.Vec2
	Opacity  float64
	Color    anim.Color
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 0, 24)

	var scratch [4]byte
	binary.LittleEndian.PutUint16(scratch[:2], f.ID)
	data = append(data, scratch[:2]...)

	for _, v := range []float64{f.Position.X, f.Position.Y, f.Size.X, f.Size.Y} {
		binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(float32(v)))
		data = append(data, scratch[:]...)
	}

	opacity := f.Opacity
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	data = append(data, uint8(opacity*255.0+0.5))

	r, g, b, a := f.Color.RGBA255()
	data = append(data, r, g, b, a)

	return data, nil
}
