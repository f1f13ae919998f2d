// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Plan describes the UARTs on a board.
type Plan struct {
	// The family of the microcontroller on the board.
	Family Family `yaml:"family"`

	// The UARTs, each on a separate SERCOM.
	UARTs []UARTPlan `yaml:"uarts"`
}

// UARTPlan describes the pins of one UART.
//
// Unused roles are left nil.
type UARTPlan struct {
	Name   string `yaml:"name"`
	Sercom int    `yaml:"sercom"`

	// The IoSet the pins are drawn from.
	//
	// If empty, the IoSet is selected from the catalog as the only set
	// on the SERCOM containing all the pins.
	IoSet string `yaml:"ioset,omitempty"`

	Rx  *PinRef `yaml:"rx,omitempty"`
	Tx  *PinRef `yaml:"tx,omitempty"`
	IO  *PinRef `yaml:"io,omitempty"`
	RTS *PinRef `yaml:"rts,omitempty"`
	CTS *PinRef `yaml:"cts,omitempty"`
	XCK *PinRef `yaml:"xck,omitempty"`
}

// LoadPlan reads a Plan from its YAML form.
func LoadPlan(r io.Reader) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(err, "decode plan")
	}
	if p.Family == 0 {
		return nil, errors.Wrap(ErrUnknownFamily, "plan has no family")
	}
	return &p, nil
}

// Options returns the options binding the pins of the UART.
func (u *UARTPlan) Options() []NewConfigOption {
	var opts []NewConfigOption
	for _, rp := range []struct {
		r Role
		p *PinRef
	}{
		{RoleRx, u.Rx},
		{RoleTx, u.Tx},
		{RoleIO, u.IO},
		{RoleRTS, u.RTS},
		{RoleCTS, u.CTS},
		{RoleXCK, u.XCK},
	} {
		if rp.p != nil {
			opts = append(opts, WithRole(rp.r, *rp.p))
		}
	}
	return opts
}

func (u *UARTPlan) pins() []PinRef {
	var pins []PinRef
	for _, p := range []*PinRef{u.Rx, u.Tx, u.IO, u.RTS, u.CTS, u.XCK} {
		if p != nil {
			pins = append(pins, *p)
		}
	}
	return pins
}

// Resolve builds the Configuration for each UART in the plan, keyed by
// UART name.
//
// Each UART must have a unique name and SERCOM, and no pin may be used by
// more than one UART.
func (p *Plan) Resolve(c *Catalog) (map[string]*Configuration, error) {
	configs := make(map[string]*Configuration, len(p.UARTs))
	sercoms := make(map[int]string)
	owners := make(map[Pin]string)
	for i := range p.UARTs {
		u := &p.UARTs[i]
		if u.Name == "" {
			return nil, errors.Errorf("uart %d has no name", i)
		}
		if _, ok := configs[u.Name]; ok {
			return nil, errors.Errorf("duplicate uart %q", u.Name)
		}
		if owner, ok := sercoms[u.Sercom]; ok {
			return nil, errors.Errorf("uart %q: sercom%d used by %q", u.Name, u.Sercom, owner)
		}
		for _, pin := range u.pins() {
			// conflicts within the UART are reported by NewConfig
			if owner, ok := owners[pin.Pin]; ok && owner != u.Name {
				return nil, errors.Wrapf(ErrPinInUse, "uart %q: %s used by %q", u.Name, pin.Pin, owner)
			}
			owners[pin.Pin] = u.Name
		}
		s, err := p.ioset(c, u)
		if err != nil {
			return nil, errors.Wrapf(err, "uart %q", u.Name)
		}
		cfg, err := NewConfig(s, u.Options()...)
		if err != nil {
			return nil, errors.Wrapf(err, "uart %q", u.Name)
		}
		sercoms[u.Sercom] = u.Name
		configs[u.Name] = cfg
	}
	return configs, nil
}

// ioset returns the IoSet named by the UART, or the one IoSet holding all
// its pins if none is named.
func (p *Plan) ioset(c *Catalog, u *UARTPlan) (*IoSet, error) {
	if u.IoSet != "" {
		return c.IoSet(p.Family, u.Sercom, u.IoSet)
	}
	return c.Select(p.Family, u.Sercom, u.pins()...)
}
