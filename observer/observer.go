package observer

import (
	"fmt"
	"io"
)

// Observer receives each published state through a single-argument callback.
type Observer interface {
	Update(state string)
}

// Publisher owns the current state and the ordered subscriber list.
type Publisher struct {
	observers []Observer
	state     string
}

// NewPublisher returns a Publisher with no subscribers and empty state.
func NewPublisher() *Publisher { return &Publisher{} }

// Subscribe appends o to the notification list. Order of attachment is
// order of notification.
func (p *Publisher) Subscribe(o Observer) {
	p.observers = append(p.observers, o)
}

// Publish stores state and notifies every subscriber in attachment order.
func (p *Publisher) Publish(state string) {
	p.state = state
	for _, o := range p.observers {
		o.Update(state)
	}
}

// State returns the most recently published state.
func (p *Publisher) State() string { return p.state }

// Display is an Observer that writes each received state to w, prefixed with
// its own name.
type Display struct {
	name string
	w    io.Writer
}

// NewDisplay returns a Display named name writing to w.
func NewDisplay(name string, w io.Writer) *Display {
	return &Display{name: name, w: w}
}

// Update writes the received state.
func (d *Display) Update(state string) {
	fmt.Fprintf(d.w, "%s received: %s\n", d.name, state)
}

// Demo writes the unit's usage transcript: two displays attached, one
// publish, both notified in attachment order.
func Demo(w io.Writer) {
	p := NewPublisher()
	p.Subscribe(NewDisplay("display-1", w))
	p.Subscribe(NewDisplay("display-2", w))

	p.Publish("breaking news")
}
