// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

import (
	"fmt"

	"github.com/pkg/errors"
)

// RoutingCode contains the USART CTRLA pad selection fields.
type RoutingCode struct {
	// RXPO selects the pad feeding the receiver.
	RXPO uint8

	// TXPO selects the pads driven by the transmitter and, if present, the
	// clock and flow control.
	TXPO uint8
}

// Positions of the routing fields in the USART CTRLA register.
const (
	CTRLATXPOPos = 16
	CTRLARXPOPos = 20

	CTRLATXPOMask = 0x3 << CTRLATXPOPos
	CTRLARXPOMask = 0x3 << CTRLARXPOPos
)

// CTRLA returns the routing fields positioned as in the CTRLA register.
//
// All other bits are zero, so the result may be masked into an existing
// register value using CTRLATXPOMask and CTRLARXPOMask.
func (rc RoutingCode) CTRLA() uint32 {
	return uint32(rc.TXPO)<<CTRLATXPOPos | uint32(rc.RXPO)<<CTRLARXPOPos
}

func (rc RoutingCode) String() string {
	return fmt.Sprintf("RXPO=%d TXPO=%d", rc.RXPO, rc.TXPO)
}

// padMatch is the set of pads acceptable for a role in a txpoRow.
//
// Bits 0-3 accept the corresponding pad and unbound accepts the role being
// absent.
type padMatch uint8

const unbound padMatch = 1 << NumSlots

func on(slots ...Slot) padMatch {
	var m padMatch
	for _, s := range slots {
		m |= 1 << s
	}
	return m
}

func (m padMatch) match(s Slot, bound bool) bool {
	if !bound {
		return m&unbound != 0
	}
	return m&(1<<s) != 0
}

// txpoRow is one legal TXPO encoding.
//
// The tx column also applies to a half-duplex IO pin.
type txpoRow struct {
	tx, xck, rts, cts padMatch
	txpo              uint8
}

// txpoTables contains the legal TXPO encodings for each family, from the
// CTRLA.TXPO field description in the respective datasheet.
var txpoTables = map[Family][]txpoRow{
	FamilySAMD21: {
		// TxD PAD[0], XCK PAD[1]
		{tx: unbound | on(Pad0), xck: unbound | on(Pad1), rts: unbound, cts: unbound, txpo: 0},
		// TxD PAD[2], XCK PAD[3]
		{tx: on(Pad2), xck: unbound | on(Pad3), rts: unbound, cts: unbound, txpo: 1},
		{tx: unbound, xck: on(Pad3), rts: unbound, cts: unbound, txpo: 1},
		// TxD PAD[0], RTS PAD[2], CTS PAD[3]
		{tx: unbound | on(Pad0), xck: unbound, rts: on(Pad2), cts: on(Pad3), txpo: 2},
	},
	FamilySAMx51: {
		// TxD PAD[0], XCK PAD[1]
		{tx: unbound | on(Pad0), xck: unbound | on(Pad1), rts: unbound, cts: unbound, txpo: 0},
		// TxD PAD[0], RTS PAD[2], CTS PAD[3]
		{tx: unbound | on(Pad0), xck: unbound, rts: on(Pad2), cts: on(Pad3), txpo: 2},
		// TxD PAD[0], XCK PAD[1], RTS/TE PAD[2]
		{tx: unbound | on(Pad0), xck: unbound | on(Pad1), rts: on(Pad2), cts: unbound, txpo: 3},
	},
}

// Derive returns the RXPO and TXPO codes for the assignment.
//
// RXPO is the pad of the RX or IO pin, or 0 if neither is bound.
// TXPO is the code of the table row matching the pads of the TX (or IO),
// XCK, RTS and CTS pins.  Returns ErrIllegalRoutingCombination if no row
// matches, or if the flow control pins do not suit the capability.
func Derive(family Family, a RoleAssignment, c Capability) (RoutingCode, error) {
	table, ok := txpoTables[family]
	if !ok {
		return RoutingCode{}, errors.Wrapf(ErrUnknownFamily, "%d", int(family))
	}
	// CTS gates the transmitter and RTS reports receiver readiness, so
	// neither is meaningful without the corresponding direction.
	if c == ReceiveOnly && a.Bound(RoleCTS) {
		return RoutingCode{}, errors.Wrap(ErrIllegalRoutingCombination, "cts without tx")
	}
	if c == TransmitOnly && a.Bound(RoleRTS) {
		return RoutingCode{}, errors.Wrap(ErrIllegalRoutingCombination, "rts without rx")
	}
	var rc RoutingCode
	data, dataBound := a.Slot(RoleIO)
	if s, ok := a.Slot(RoleRx); ok {
		rc.RXPO = uint8(s)
	} else if dataBound {
		rc.RXPO = uint8(data)
	}
	if !dataBound {
		data, dataBound = a.Slot(RoleTx)
	}
	xck, xckBound := a.Slot(RoleXCK)
	rts, rtsBound := a.Slot(RoleRTS)
	cts, ctsBound := a.Slot(RoleCTS)
	for _, row := range table {
		if row.tx.match(data, dataBound) &&
			row.xck.match(xck, xckBound) &&
			row.rts.match(rts, rtsBound) &&
			row.cts.match(cts, ctsBound) {
			rc.TXPO = row.txpo
			return rc, nil
		}
	}
	return RoutingCode{}, errors.Wrapf(ErrIllegalRoutingCombination,
		"%s: tx=%s xck=%s rts=%s cts=%s", family,
		slotName(data, dataBound), slotName(xck, xckBound),
		slotName(rts, rtsBound), slotName(cts, ctsBound))
}

func slotName(s Slot, bound bool) string {
	if !bound {
		return "-"
	}
	return s.String()
}
