package remote

import (
	"log"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/winfx/anim"
)

// A Window is a remote display surface on a winrx device. Property
// writes are batched by an anim.BatchTarget and published as a single
// binary frame per flush.
type Window struct {
	client mqtt.Client
	topic  string
	frame  Frame
	target *anim.BatchTarget
}

// NewWindow creates a Window with the given initial state and wraps it
// in a batching target.
func NewWindow(client mqtt.Client, topic string, id uint16,
	position, size anim.Vec2, opacity float64, color anim.Color) *Window {

	w := new(Window)
	w.client = client
	w.topic = topic
	w.frame = Frame{
		ID:       id,
		Position: position,
		Size:     size,
		Opacity:  opacity,
		Color:    color,
	}
	w.target = anim.NewBatchTarget(w, position, size, opacity, color)
	return w
}

// Target returns the animation target for this window.
func (w *Window) Target() *anim.BatchTarget {
	return w.target
}

// ApplyPosition implements anim.Surface.
func (w *Window) ApplyPosition(v anim.Vec2) {
	w.frame.Position = v
}

// ApplySize implements anim.Surface.
func (w *Window) ApplySize(v anim.Vec2) {
	w.frame.Size = v
}

// ApplyOpacity implements anim.Surface.
func (w *Window) ApplyOpacity(v float64) {
	w.frame.Opacity = v
}

// ApplyColor implements anim.Surface.
func (w *Window) ApplyColor(c anim.Color) {
	w.frame.Color = c
}

// Commit sends the window state as binary data over MQTT to the winrx
// device. The batching target calls it once per flush that changed
// anything.
func (w *Window) Commit() {
	b, _ := w.frame.MarshalBinary()
	token := w.client.Publish(w.topic, 1, false, b)
	if token.Wait() && token.Error() != nil {
		log.Println(token.Error())
	}
}
