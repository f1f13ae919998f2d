// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

import "github.com/pkg/errors"

// Errors returned while building a Configuration.
//
// The errors returned are wrapped with context identifying the role, pin or
// IoSet involved, so use errors.Is to test for a particular error.
var (
	// ErrIncompatiblePin indicates the pin cannot reach the required pad
	// through the IoSet.
	ErrIncompatiblePin = errors.New("incompatible pin")

	// ErrRoleAlreadyBound indicates a bind targeted a role that already has
	// a pin. The role must be cleared before it can be rebound.
	ErrRoleAlreadyBound = errors.New("role already bound")

	// ErrSlotInUse indicates the pad is already claimed by another role.
	ErrSlotInUse = errors.New("pad already in use")

	// ErrNoDataRole indicates neither RX, TX nor IO was bound.
	ErrNoDataRole = errors.New("no data role bound")

	// ErrIllegalRoutingCombination indicates the bound pads have no
	// RXPO/TXPO encoding.
	ErrIllegalRoutingCombination = errors.New("illegal routing combination")

	// ErrUnknownFamily indicates a peripheral family that is not supported.
	ErrUnknownFamily = errors.New("unknown family")

	// ErrUnknownIoSet indicates the catalog has no such SERCOM or IoSet.
	ErrUnknownIoSet = errors.New("unknown ioset")

	// ErrUnknownRole indicates a Role outside the defined set.
	ErrUnknownRole = errors.New("unknown role")

	// ErrInvalidPin indicates a pin or pin reference could not be parsed.
	ErrInvalidPin = errors.New("invalid pin")

	// ErrPinInUse indicates a physical pin is assigned to more than one
	// UART in a Plan.
	ErrPinInUse = errors.New("pin already in use")
)
