package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alestormoody/design-pattern/command"
)

// fake is a Command the Remote has never heard of, proving the invoker is
// receiver-agnostic.
type fake struct{ fired int }

func (f *fake) Execute() string {
	f.fired++
	return "fake fired"
}

// TestRemote_TriggersBoundCommand verifies rebinding changes the button's
// effect without changing the Remote.
func TestRemote_TriggersBoundCommand(t *testing.T) {
	light := &command.Light{}
	remote := &command.Remote{}

	remote.Bind(command.NewTurnOn(light))
	assert.Equal(t, "light is on", remote.Press())

	remote.Bind(command.NewTurnOff(light))
	assert.Equal(t, "light is off", remote.Press())
}

// TestRemote_ReceiverAgnostic verifies the invoker works with any Command,
// not just the light-backed ones.
func TestRemote_ReceiverAgnostic(t *testing.T) {
	f := &fake{}
	remote := &command.Remote{}
	remote.Bind(f)

	assert.Equal(t, "fake fired", remote.Press())
	assert.Equal(t, 1, f.fired)
}

// TestRemote_UnboundPress documents that pressing with nothing bound is a
// no-op.
func TestRemote_UnboundPress(t *testing.T) {
	remote := &command.Remote{}

	assert.Equal(t, "", remote.Press())
}
