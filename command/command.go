package command

import (
	"fmt"
	"io"
)

// Command encapsulates one request behind a single operation.
type Command interface {
	Execute() string
}

// Light is the receiver the sample commands act on.
type Light struct{}

// On turns the light on.
func (*Light) On() string { return "light is on" }

// Off turns the light off.
func (*Light) Off() string { return "light is off" }

// TurnOn encapsulates the "switch on" request against a Light.
type TurnOn struct {
	light *Light
}

// NewTurnOn returns a TurnOn command bound to light.
func NewTurnOn(light *Light) *TurnOn { return &TurnOn{light: light} }

// Execute performs the request.
func (c *TurnOn) Execute() string { return c.light.On() }

// TurnOff encapsulates the "switch off" request against a Light.
type TurnOff struct {
	light *Light
}

// NewTurnOff returns a TurnOff command bound to light.
func NewTurnOff(light *Light) *TurnOff { return &TurnOff{light: light} }

// Execute performs the request.
func (c *TurnOff) Execute() string { return c.light.Off() }

// Remote is the invoker: it holds one bound command and triggers it on
// demand, never touching the receiver directly.
type Remote struct {
	command Command
}

// Bind sets the command the button triggers.
func (r *Remote) Bind(c Command) { r.command = c }

// Press triggers the bound command and returns its result.
// With nothing bound it does nothing and returns the empty string.
func (r *Remote) Press() string {
	if r.command == nil {
		return ""
	}
	return r.command.Execute()
}

// Demo writes the unit's usage transcript: one remote, two bindings.
func Demo(w io.Writer) {
	light := &Light{}
	remote := &Remote{}

	remote.Bind(NewTurnOn(light))
	fmt.Fprintln(w, remote.Press())

	remote.Bind(NewTurnOff(light))
	fmt.Fprintln(w, remote.Press())
}
