package remote

import (
	"encoding/json"
	"log"

	"github.com/eclipse/paho.mqtt.golang"
)

// ControlMessage is a command sent by an operator or a winrx device.
type ControlMessage struct {
	Type string `json:"type"`
}

// Control subscribes to the command topic and feeds messages into the
// animation driver's event pump. Handlers run on the MQTT client's
// goroutine; messages are queued on a channel and drained on the
// driver's thread by PumpEvents, keeping all engine state
// single-threaded.
type Control struct {
	client mqtt.Client
	topic  string
	msgs   chan ControlMessage

	skip bool
	stop bool
}

// NewControl creates a Control for the given command topic.
func NewControl(client mqtt.Client, topic string) *Control {
	c := new(Control)
	c.client = client
	c.topic = topic
	c.msgs = make(chan ControlMessage, 16)
	return c
}

// Subscribe starts listening for commands. Call it from the client's
// OnConnect handler so the subscription survives reconnects.
func (c *Control) Subscribe() {
	if token := c.client.Subscribe(c.topic, 0, c.handleMessage); token.Wait() && token.Error() != nil {
		log.Println(token.Error())
	}
}

func (c *Control) handleMessage(client mqtt.Client, msg mqtt.Message) {
	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Discarding bad control message on %s: %v", msg.Topic(), err)
		return
	}

	select {
	case c.msgs <- message:
	default:
		log.Printf("Control queue full, dropping %q", message.Type)
	}
}

// PumpEvents implements anim.Pump. It drains the queued control
// messages without blocking.
func (c *Control) PumpEvents() {
	for {
		select {
		case msg := <-c.msgs:
			switch msg.Type {
			case "skip":
				c.skip = true
			case "stop":
				c.stop = true
			default:
				log.Printf("Ignoring unknown control message %q", msg.Type)
			}
		default:
			return
		}
	}
}

// Skip reports whether a skip command arrived since the last call and
// clears it.
func (c *Control) Skip() bool {
	s := c.skip
	c.skip = false
	return s
}

// Stop reports whether a stop command has arrived.
func (c *Control) Stop() bool {
	return c.stop
}
