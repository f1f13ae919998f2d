// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// IoSet contains the pins that may be routed to the pads of a SERCOM.
//
// On parts with IoSets the datasheet only guarantees timing for pins drawn
// from a single set, so a Configuration is always built against one IoSet.
// Parts without IoSets have a single set per SERCOM listing every pin that
// reaches that SERCOM.
type IoSet struct {
	// The peripheral family the set belongs to.
	Family Family

	// The SERCOM instance the pins are routed to.
	Sercom int

	// The name of the set, e.g. "ioset1".
	Name string

	// The pad each pin connects to.
	pads map[PinRef]Slot
}

// NewIoSet constructs an IoSet with the identity and options provided.
//
// The available option is [WithPad].
func NewIoSet(family Family, sercom int, name string, options ...NewIoSetOption) *IoSet {
	s := &IoSet{Family: family, Sercom: sercom, Name: name, pads: make(map[PinRef]Slot)}
	for _, o := range options {
		o.applyIoSetOption(s)
	}
	return s
}

// Slot returns the pad the pin connects to within the set.
func (s *IoSet) Slot(pin PinRef) (Slot, error) {
	slot, ok := s.pads[pin]
	if !ok {
		return 0, errors.Wrapf(ErrIncompatiblePin, "%s not in %s", pin, s)
	}
	return slot, nil
}

// Pins returns the pins that connect to the given pad, sorted by pin.
func (s *IoSet) Pins(slot Slot) []PinRef {
	var pins []PinRef
	for p, ps := range s.pads {
		if ps == slot {
			pins = append(pins, p)
		}
	}
	sortPinRefs(pins)
	return pins
}

// Len returns the number of pins in the set.
func (s *IoSet) Len() int {
	return len(s.pads)
}

func (s *IoSet) String() string {
	return fmt.Sprintf("%s/sercom%d/%s", s.Family, s.Sercom, s.Name)
}

// Equal returns true if the two sets have the same identity and pins.
func (s *IoSet) Equal(o *IoSet) bool {
	return s.Family == o.Family && s.Sercom == o.Sercom && s.Name == o.Name &&
		maps.Equal(s.pads, o.pads)
}

func sortPinRefs(pins []PinRef) {
	slices.SortFunc(pins, func(a, b PinRef) bool {
		if a.Pin != b.Pin {
			return a.Pin < b.Pin
		}
		return a.Function < b.Function
	})
}
