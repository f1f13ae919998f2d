// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

import (
	"strings"

	"github.com/pkg/errors"
)

// Role is the signal a pin carries for the UART.
type Role int

const (
	// RoleRx is the receive data input, RxD.
	RoleRx Role = iota

	// RoleTx is the transmit data output, TxD.
	RoleTx

	// RoleIO is a single pad carrying both receive and transmit data in
	// half-duplex operation.
	RoleIO

	// RoleRTS is the ready-to-send output, also the RS485 transmit enable.
	RoleRTS

	// RoleCTS is the clear-to-send input.
	RoleCTS

	// RoleXCK is the clock for synchronous operation.
	RoleXCK

	numRoles = iota
)

var roleNames = [numRoles]string{"rx", "tx", "io", "rts", "cts", "xck"}

// Roles returns all the roles in order.
func Roles() []Role {
	return []Role{RoleRx, RoleTx, RoleIO, RoleRTS, RoleCTS, RoleXCK}
}

func (r Role) valid() bool {
	return r >= 0 && r < numRoles
}

func (r Role) String() string {
	if !r.valid() {
		return "unknown"
	}
	return roleNames[r]
}

// ParseRole returns the Role with the given name, e.g. "rx".
func ParseRole(name string) (Role, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, rn := range roleNames {
		if rn == n {
			return Role(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownRole, "%q", name)
}

// Binding is a pin and the pad it is routed to.
type Binding struct {
	Pin  PinRef
	Slot Slot
}

// RoleAssignment records the Binding, if any, for each Role.
//
// The zero value has no roles bound.
type RoleAssignment struct {
	bindings [numRoles]Binding
}

// Get returns the Binding for the role, and false if the role is unbound.
func (a RoleAssignment) Get(r Role) (Binding, bool) {
	if !r.valid() || a.bindings[r].Pin.IsZero() {
		return Binding{}, false
	}
	return a.bindings[r], true
}

// Bound returns true if the role has a pin.
func (a RoleAssignment) Bound(r Role) bool {
	_, ok := a.Get(r)
	return ok
}

// Slot returns the pad bound to the role, and false if the role is unbound.
func (a RoleAssignment) Slot(r Role) (Slot, bool) {
	b, ok := a.Get(r)
	return b.Slot, ok
}

// Holder returns the role bound to the pad, and false if the pad is free.
func (a RoleAssignment) Holder(s Slot) (Role, bool) {
	for r := Role(0); r < numRoles; r++ {
		if b, ok := a.Get(r); ok && b.Slot == s {
			return r, true
		}
	}
	return 0, false
}

// Pins returns the bound pins in role order.
func (a RoleAssignment) Pins() []PinRef {
	var pins []PinRef
	for r := Role(0); r < numRoles; r++ {
		if b, ok := a.Get(r); ok {
			pins = append(pins, b.Pin)
		}
	}
	return pins
}

func (a RoleAssignment) String() string {
	var parts []string
	for r := Role(0); r < numRoles; r++ {
		if b, ok := a.Get(r); ok {
			parts = append(parts, r.String()+"="+b.Pin.String()+"@"+b.Slot.String())
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}
