// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

/*
Package uartpads binds microcontroller pins to the signals of a SERCOM
configured as a USART, and derives the CTRLA.RXPO and CTRLA.TXPO codes that
route those signals through the SERCOM pads.

Each SERCOM has four pads, and each pad may be connected to one of a small
number of pins.  The datasheet only permits certain combinations of pads
for each signal, and an illegal combination silently misroutes or disables
the peripheral.  This package rejects such combinations before any
register is written.

Pins are drawn from an [IoSet], which lists the pins connected to each pad
of a SERCOM.  The [Catalog] built into the package provides the IoSets for
the SAM D21 and SAM D51/E5x families, and others may be loaded with
[LoadCatalog].

Roles are bound to pins using a [Builder], in any order, and the Builder is
then finalized into a [Configuration].  Finalizing classifies the
[Capability] of the UART and derives the [RoutingCode].  Alternatively
[NewConfig] performs both steps from a list of options.

Configurations are immutable, and are consumed by the code that programs the
peripheral.

Only the pad routing is validated. The caller is responsible for placing
the pins in the peripheral function named by each [PinRef], and for the
clocks, interrupts and the protocol driver.

# Example Usage

Configure a full-duplex UART on SERCOM3 of a SAM D51 using IoSet 1:

	s, err := uartpads.LookupIoSet(uartpads.FamilySAMx51, 3, "ioset1")
	cfg, err := uartpads.NewConfig(s,
		uartpads.WithRx(uartpads.MustPinRef("PA16/D")),
		uartpads.WithTx(uartpads.MustPinRef("PA17/D")),
	)
	ctrla |= cfg.Routing().CTRLA()

Build the same configuration incrementally:

	b := uartpads.NewBuilder(s)
	err = b.BindTx(uartpads.MustPinRef("PA17/D"))
	err = b.BindRx(uartpads.MustPinRef("PA16/D"))
	cfg, err = b.Finalize()
*/
package uartpads
