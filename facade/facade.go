package facade

import (
	"fmt"
	"io"
)

// The independent subsystems the facade coordinates. None of them knows the
// others exist.

type cpu struct{}

func (cpu) freeze() string  { return "cpu: freeze" }
func (cpu) execute() string { return "cpu: execute kernel" }

type memory struct{}

func (memory) load() string { return "memory: load bootloader" }

type disk struct{}

func (disk) read() string { return "disk: read boot sector" }

// Computer is the facade: one object owning the subsystems, one simplified
// operation sequencing them.
type Computer struct {
	cpu    cpu
	memory memory
	disk   disk
}

// NewComputer returns a Computer with its subsystems in place.
func NewComputer() *Computer { return &Computer{} }

// Start runs the boot sequence across all subsystems and returns the
// aggregated step log in execution order.
func (c *Computer) Start() []string {
	return []string{
		c.cpu.freeze(),
		c.memory.load(),
		c.disk.read(),
		c.cpu.execute(),
	}
}

// Demo writes the unit's usage transcript: one Start call, four subsystem
// steps.
func Demo(w io.Writer) {
	for _, step := range NewComputer().Start() {
		fmt.Fprintln(w, step)
	}
}
