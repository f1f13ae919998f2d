// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

// Capability indicates the directions a Configuration supports.
type Capability int

const (
	// ReceiveOnly UARTs have an RX pin but no TX.
	ReceiveOnly Capability = iota + 1

	// TransmitOnly UARTs have a TX pin but no RX.
	TransmitOnly

	// FullDuplex UARTs have both RX and TX, or a half-duplex IO pin.
	FullDuplex
)

func (c Capability) String() string {
	switch c {
	case ReceiveOnly:
		return "receive-only"
	case TransmitOnly:
		return "transmit-only"
	case FullDuplex:
		return "full-duplex"
	default:
		return "unknown"
	}
}

// CanReceive returns true if the receiver should be enabled (CTRLB.RXEN).
func (c Capability) CanReceive() bool {
	return c == ReceiveOnly || c == FullDuplex
}

// CanTransmit returns true if the transmitter should be enabled (CTRLB.TXEN).
func (c Capability) CanTransmit() bool {
	return c == TransmitOnly || c == FullDuplex
}

// Classify returns the Capability provided by the assignment.
//
// Returns ErrNoDataRole if none of RX, TX or IO is bound.
func Classify(a RoleAssignment) (Capability, error) {
	rx, tx := a.Bound(RoleRx), a.Bound(RoleTx)
	switch {
	case a.Bound(RoleIO), rx && tx:
		return FullDuplex, nil
	case rx:
		return ReceiveOnly, nil
	case tx:
		return TransmitOnly, nil
	default:
		return 0, ErrNoDataRole
	}
}
