// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Pin identifies a port pin, e.g. PA08.
//
// The port group is held in the upper bits and the index within the group
// in the lower five bits, so PA00 is 0 and PB00 is 32.
type Pin uint8

// NumPorts is the number of port groups that may be named, PA through PD.
const NumPorts = 4

// NewPin returns the pin at index in port group, where group 0 is port A.
func NewPin(group, index int) Pin {
	return Pin(group<<5 | index&0x1f)
}

// Group returns the port group of the pin, with port A being 0.
func (p Pin) Group() int {
	return int(p >> 5)
}

// Index returns the index of the pin within its port group.
func (p Pin) Index() int {
	return int(p & 0x1f)
}

func (p Pin) String() string {
	return fmt.Sprintf("P%c%02d", 'A'+p.Group(), p.Index())
}

// ParsePin parses a pin name such as "PA08".
func ParsePin(s string) (Pin, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	if len(n) < 3 || n[0] != 'P' || n[1] < 'A' || n[1] >= 'A'+NumPorts {
		return 0, errors.Wrapf(ErrInvalidPin, "%q", s)
	}
	idx, err := strconv.Atoi(n[2:])
	if err != nil || idx < 0 || idx > 31 {
		return 0, errors.Wrapf(ErrInvalidPin, "%q", s)
	}
	return NewPin(int(n[1]-'A'), idx), nil
}

// Function is the peripheral multiplexer function that routes a pin to a
// SERCOM.
type Function byte

const (
	// FunctionC is the primary SERCOM function.
	FunctionC Function = 'C'

	// FunctionD is the alternate SERCOM function (SERCOM-ALT).
	FunctionD Function = 'D'
)

func (f Function) String() string {
	return string(f)
}

// PinRef is a pin together with the mux function that routes it to the
// peripheral.
//
// The zero value refers to no pin.
type PinRef struct {
	Pin      Pin
	Function Function
}

// IsZero returns true if the PinRef does not refer to a pin.
func (r PinRef) IsZero() bool {
	return r.Function == 0
}

func (r PinRef) String() string {
	if r.IsZero() {
		return "-"
	}
	return r.Pin.String() + "/" + r.Function.String()
}

// ParsePinRef parses a pin reference of the form "PA08/C".
func ParsePinRef(s string) (PinRef, error) {
	name, fn, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return PinRef{}, errors.Wrapf(ErrInvalidPin, "%q missing function", s)
	}
	p, err := ParsePin(name)
	if err != nil {
		return PinRef{}, err
	}
	if len(fn) != 1 {
		return PinRef{}, errors.Wrapf(ErrInvalidPin, "%q bad function", s)
	}
	f := Function(strings.ToUpper(fn)[0])
	if f != FunctionC && f != FunctionD {
		return PinRef{}, errors.Wrapf(ErrInvalidPin, "%q bad function", s)
	}
	return PinRef{Pin: p, Function: f}, nil
}

// MustPinRef is like ParsePinRef but panics if s cannot be parsed.
//
// It is intended for static pin tables.
func MustPinRef(s string) PinRef {
	r, err := ParsePinRef(s)
	if err != nil {
		panic(err)
	}
	return r
}

// UnmarshalYAML decodes a PinRef from its "PA08/C" form.
func (r *PinRef) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	p, err := ParsePinRef(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*r = p
	return nil
}

// Slot identifies one of the four SERCOM pads.
type Slot uint8

const (
	Pad0 Slot = iota
	Pad1
	Pad2
	Pad3

	// NumSlots is the number of pads on a SERCOM.
	NumSlots = 4
)

func (s Slot) String() string {
	return fmt.Sprintf("PAD[%d]", uint8(s))
}
