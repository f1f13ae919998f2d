// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

import (
	"github.com/pkg/errors"
)

// Builder accumulates the pins bound to each role of a UART on a SERCOM.
//
// Binds may be made in any order.  A bind that conflicts with the existing
// bindings returns an error and leaves the Builder unchanged.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	// The set the pins are drawn from.
	ioset *IoSet

	// The bindings made so far.
	a RoleAssignment
}

// NewBuilder returns an empty Builder drawing pins from the IoSet.
func NewBuilder(ioset *IoSet) *Builder {
	return &Builder{ioset: ioset}
}

// IoSet returns the set the Builder draws pins from.
func (b *Builder) IoSet() *IoSet {
	return b.ioset
}

// Assignment returns a snapshot of the roles bound so far.
func (b *Builder) Assignment() RoleAssignment {
	return b.a
}

// Bind binds the pin to the role.
//
// The role must be unbound, the pin must name a function and be in the
// IoSet, and the pad it connects to must exist, be free, and be permitted
// for the role.
func (b *Builder) Bind(r Role, pin PinRef) error {
	if !r.valid() {
		return errors.Wrapf(ErrUnknownRole, "%d", int(r))
	}
	if held, ok := b.heldBy(r); ok {
		return errors.Wrapf(ErrRoleAlreadyBound, "bind %s: %s bound to %s",
			r, held, b.a.bindings[held].Pin)
	}
	if pin.IsZero() {
		return errors.Wrapf(ErrInvalidPin, "bind %s: %s has no function", r, pin.Pin)
	}
	slot, err := b.ioset.Slot(pin)
	if err != nil {
		return errors.Wrapf(err, "bind %s", r)
	}
	if slot >= NumSlots {
		return errors.Wrapf(ErrIncompatiblePin, "bind %s: %s is on %s", r, pin, slot)
	}
	if !slotPermitted(r, slot) {
		return errors.Wrapf(ErrIncompatiblePin, "bind %s: %s is on %s", r, pin, slot)
	}
	if holder, ok := b.a.Holder(slot); ok {
		return errors.Wrapf(ErrSlotInUse, "bind %s: %s held by %s", r, slot, holder)
	}
	for _, p := range b.a.Pins() {
		if p.Pin == pin.Pin {
			return errors.Wrapf(ErrPinInUse, "bind %s: %s", r, pin.Pin)
		}
	}
	b.a.bindings[r] = Binding{Pin: pin, Slot: slot}
	return nil
}

// BindRx binds the receive data pin.
func (b *Builder) BindRx(pin PinRef) error {
	return b.Bind(RoleRx, pin)
}

// BindTx binds the transmit data pin.
func (b *Builder) BindTx(pin PinRef) error {
	return b.Bind(RoleTx, pin)
}

// BindIO binds a single pin carrying both receive and transmit data.
//
// Neither RX nor TX may be bound.
func (b *Builder) BindIO(pin PinRef) error {
	return b.Bind(RoleIO, pin)
}

// BindRTS binds the ready-to-send pin, which must connect to PAD[2].
func (b *Builder) BindRTS(pin PinRef) error {
	return b.Bind(RoleRTS, pin)
}

// BindCTS binds the clear-to-send pin, which must connect to PAD[3].
func (b *Builder) BindCTS(pin PinRef) error {
	return b.Bind(RoleCTS, pin)
}

// BindXCK binds the synchronous clock pin, which must connect to PAD[1] or
// PAD[3].
func (b *Builder) BindXCK(pin PinRef) error {
	return b.Bind(RoleXCK, pin)
}

// Clear unbinds the role, if bound.
func (b *Builder) Clear(r Role) {
	if r.valid() {
		b.a.bindings[r] = Binding{}
	}
}

// Finalize classifies the bindings and derives the routing codes,
// returning the resulting Configuration.
//
// No Configuration is returned if either step fails.
// The Builder is unchanged and may be modified and finalized again.
func (b *Builder) Finalize() (*Configuration, error) {
	c, err := Classify(b.a)
	if err != nil {
		return nil, errors.Wrapf(err, "finalize %s", b.ioset)
	}
	rc, err := Derive(b.ioset.Family, b.a, c)
	if err != nil {
		return nil, errors.Wrapf(err, "finalize %s", b.ioset)
	}
	return &Configuration{ioset: b.ioset, assignment: b.a, capability: c, routing: rc}, nil
}

// heldBy returns the bound role that prevents r from being bound.
//
// RX and TX are blocked by IO, and IO by either of them, as IO occupies
// both directions.
func (b *Builder) heldBy(r Role) (Role, bool) {
	var blockers []Role
	switch r {
	case RoleRx:
		blockers = []Role{RoleRx, RoleIO}
	case RoleTx:
		blockers = []Role{RoleTx, RoleIO}
	case RoleIO:
		blockers = []Role{RoleIO, RoleRx, RoleTx}
	default:
		blockers = []Role{r}
	}
	for _, x := range blockers {
		if b.a.Bound(x) {
			return x, true
		}
	}
	return 0, false
}

// slotPermitted returns true if the role may be carried on the pad.
//
// Flow control and clock signals have fixed pads; the data roles may use any
// pad, subject to the routing table checked at finalization.
func slotPermitted(r Role, s Slot) bool {
	switch r {
	case RoleRTS:
		return s == Pad2
	case RoleCTS:
		return s == Pad3
	case RoleXCK:
		return s == Pad1 || s == Pad3
	default:
		return true
	}
}
