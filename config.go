// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

import "fmt"

// Configuration is a validated set of UART pad bindings and the routing
// codes that select them.
//
// Configurations are only created by finalizing a Builder and are immutable,
// so may be shared freely.
type Configuration struct {
	ioset      *IoSet
	assignment RoleAssignment
	capability Capability
	routing    RoutingCode
}

// IoSet returns the set the pins were drawn from.
func (c *Configuration) IoSet() *IoSet {
	return c.ioset
}

// Family returns the peripheral family of the SERCOM.
func (c *Configuration) Family() Family {
	return c.ioset.Family
}

// Sercom returns the SERCOM instance the pins are routed to.
func (c *Configuration) Sercom() int {
	return c.ioset.Sercom
}

// Assignment returns the pins bound to each role.
func (c *Configuration) Assignment() RoleAssignment {
	return c.assignment
}

// Capability returns the directions supported by the configuration.
func (c *Configuration) Capability() Capability {
	return c.capability
}

// Routing returns the RXPO and TXPO codes.
func (c *Configuration) Routing() RoutingCode {
	return c.routing
}

// RXPO returns the receive pad selection code.
func (c *Configuration) RXPO() uint8 {
	return c.routing.RXPO
}

// TXPO returns the transmit pad selection code.
func (c *Configuration) TXPO() uint8 {
	return c.routing.TXPO
}

// HalfDuplex returns true if a single IO pin carries both directions.
func (c *Configuration) HalfDuplex() bool {
	return c.assignment.Bound(RoleIO)
}

// Synchronous returns true if a clock pin is bound, so the USART should
// be placed in synchronous mode (CTRLA.CMODE).
func (c *Configuration) Synchronous() bool {
	return c.assignment.Bound(RoleXCK)
}

// Pins returns the bound pins, for handing to the pin multiplexer.
func (c *Configuration) Pins() []PinRef {
	return c.assignment.Pins()
}

func (c *Configuration) String() string {
	return fmt.Sprintf("%s %s %s %s", c.ioset, c.capability, c.routing, c.assignment)
}
