package factory

import (
	"errors"
	"fmt"
	"io"
)

// Known vehicle kinds accepted by New.
const (
	KindCar        = "car"
	KindMotorcycle = "motorcycle"
)

// ErrUnknownVehicle is returned when New is given a tag outside the known set.
var ErrUnknownVehicle = errors.New("factory: unknown vehicle kind")

// Vehicle is the shared capability every variant implements.
type Vehicle interface {
	// Drive returns the variant-specific driving message.
	Drive() string
}

type car struct{}

func (car) Drive() string { return "driving a car on four wheels" }

type motorcycle struct{}

func (motorcycle) Drive() string { return "riding a motorcycle on two wheels" }

// New constructs the Vehicle variant named by kind.
// Unrecognized kinds return ErrUnknownVehicle wrapped with the offending tag.
func New(kind string) (Vehicle, error) {
	switch kind {
	case KindCar:
		return car{}, nil
	case KindMotorcycle:
		return motorcycle{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVehicle, kind)
	}
}

// Demo writes the unit's usage transcript: both known kinds drive, and an
// unknown tag surfaces the catalog's single error path.
func Demo(w io.Writer) {
	for _, kind := range []string{KindCar, KindMotorcycle} {
		v, err := New(kind)
		if err != nil {
			fmt.Fprintln(w, "error:", err)
			continue
		}
		fmt.Fprintln(w, v.Drive())
	}

	if _, err := New("boat"); err != nil {
		fmt.Fprintln(w, "error:", err)
	}
}
