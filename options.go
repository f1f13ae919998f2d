// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

// NewConfigOption defines the interface required to provide an option to
// NewConfig.
type NewConfigOption interface {
	applyConfigOption(*Builder) error
}

// NewConfig constructs a Configuration from the pins in the IoSet bound by
// the provided options.
//
// The available options are [WithRx], [WithTx], [WithIO], [WithRTS],
// [WithCTS] and [WithXCK].
//
// The options are applied in order, and the first to fail aborts the
// construction, so binding the same role twice returns ErrRoleAlreadyBound.
func NewConfig(ioset *IoSet, options ...NewConfigOption) (*Configuration, error) {
	b := NewBuilder(ioset)
	for _, o := range options {
		if err := o.applyConfigOption(b); err != nil {
			return nil, err
		}
	}
	return b.Finalize()
}

// RoleOption is an option that binds a pin to a role.
type RoleOption struct {
	Role Role
	Pin  PinRef
}

// WithRole returns an option that binds the pin to the role.
func WithRole(role Role, pin PinRef) RoleOption {
	return RoleOption{role, pin}
}

// WithRx returns an option that binds the receive data pin.
func WithRx(pin PinRef) RoleOption {
	return RoleOption{RoleRx, pin}
}

// WithTx returns an option that binds the transmit data pin.
func WithTx(pin PinRef) RoleOption {
	return RoleOption{RoleTx, pin}
}

// WithIO returns an option that binds a half-duplex data pin.
func WithIO(pin PinRef) RoleOption {
	return RoleOption{RoleIO, pin}
}

// WithRTS returns an option that binds the ready-to-send pin.
func WithRTS(pin PinRef) RoleOption {
	return RoleOption{RoleRTS, pin}
}

// WithCTS returns an option that binds the clear-to-send pin.
func WithCTS(pin PinRef) RoleOption {
	return RoleOption{RoleCTS, pin}
}

// WithXCK returns an option that binds the synchronous clock pin.
func WithXCK(pin PinRef) RoleOption {
	return RoleOption{RoleXCK, pin}
}

func (o RoleOption) applyConfigOption(b *Builder) error {
	return b.Bind(o.Role, o.Pin)
}

// NewIoSetOption defines the interface required to provide an option to
// NewIoSet.
type NewIoSetOption interface {
	applyIoSetOption(*IoSet)
}

// Pad is an option that connects pins to a pad.
type Pad struct {
	Slot Slot
	Pins []PinRef
}

// WithPad returns an option that connects the pins to the given pad.
func WithPad(slot Slot, pins ...PinRef) Pad {
	return Pad{slot, pins}
}

func (o Pad) applyIoSetOption(s *IoSet) {
	for _, p := range o.Pins {
		s.pads[p] = o.Slot
	}
}
