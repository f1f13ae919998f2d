// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/warthog618/go-uartpads"
)

type resolveOptions struct {
	family string
	sercom int
	ioset  string

	rx, tx, io, rts, cts, xck string
}

func (o resolveOptions) pins() map[uartpads.Role]string {
	return map[uartpads.Role]string{
		uartpads.RoleRx:  o.rx,
		uartpads.RoleTx:  o.tx,
		uartpads.RoleIO:  o.io,
		uartpads.RoleRTS: o.rts,
		uartpads.RoleCTS: o.cts,
		uartpads.RoleXCK: o.xck,
	}
}

var (
	resolveOpts = resolveOptions{}

	resolveCmd = &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the routing codes for a UART",
		Long:  "Bind the given pins to a UART on a SERCOM and report the capability and the RXPO and TXPO codes. Pins are given as NAME/FUNCTION, e.g. PA16/D.",
		Example: `  uartpads resolve -f samx51 -s 3 -i ioset1 --rx PA16/D --tx PA17/D
  uartpads resolve -f samd21 -s 0 --io PA08/C`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolve(cmd.OutOrStdout(), uartpads.DefaultCatalog(), resolveOpts)
		},
	}
)

func init() {
	flags := resolveCmd.Flags()
	flags.StringVarP(&resolveOpts.family, "family", "f", "samx51", "peripheral family (samd21, samx51)")
	flags.IntVarP(&resolveOpts.sercom, "sercom", "s", 0, "SERCOM instance")
	flags.StringVarP(&resolveOpts.ioset, "ioset", "i", "", "IoSet the pins are drawn from (default: the only IoSet holding all the pins)")
	flags.StringVar(&resolveOpts.rx, "rx", "", "receive data pin")
	flags.StringVar(&resolveOpts.tx, "tx", "", "transmit data pin")
	flags.StringVar(&resolveOpts.io, "io", "", "half-duplex data pin")
	flags.StringVar(&resolveOpts.rts, "rts", "", "ready-to-send pin")
	flags.StringVar(&resolveOpts.cts, "cts", "", "clear-to-send pin")
	flags.StringVar(&resolveOpts.xck, "xck", "", "synchronous clock pin")
}

func resolve(w io.Writer, c *uartpads.Catalog, opts resolveOptions) error {
	family, err := uartpads.ParseFamily(opts.family)
	if err != nil {
		return err
	}
	var options []uartpads.NewConfigOption
	var refs []uartpads.PinRef
	pins := opts.pins()
	for _, r := range uartpads.Roles() {
		name := pins[r]
		if name == "" {
			continue
		}
		p, err := uartpads.ParsePinRef(name)
		if err != nil {
			return err
		}
		options = append(options, uartpads.WithRole(r, p))
		refs = append(refs, p)
	}
	var s *uartpads.IoSet
	if opts.ioset != "" {
		s, err = c.IoSet(family, opts.sercom, opts.ioset)
	} else {
		s, err = c.Select(family, opts.sercom, refs...)
	}
	if err != nil {
		return err
	}
	cfg, err := uartpads.NewConfig(s, options...)
	if err != nil {
		return err
	}
	printConfig(w, "", cfg)
	return nil
}

func printConfig(w io.Writer, name string, cfg *uartpads.Configuration) {
	if name != "" {
		fmt.Fprintf(w, "%s:\n", name)
	}
	fmt.Fprintf(w, "  ioset:      %s\n", cfg.IoSet())
	fmt.Fprintf(w, "  capability: %s\n", cfg.Capability())
	a := cfg.Assignment()
	for _, r := range uartpads.Roles() {
		if b, ok := a.Get(r); ok {
			fmt.Fprintf(w, "  %-4s        %s on %s\n", r.String()+":", b.Pin, b.Slot)
		}
	}
	fmt.Fprintf(w, "  rxpo:       %d\n", cfg.RXPO())
	fmt.Fprintf(w, "  txpo:       %d\n", cfg.TXPO())
	fmt.Fprintf(w, "  ctrla:      0x%08x\n", cfg.Routing().CTRLA())
	if cfg.Synchronous() {
		fmt.Fprintln(w, "  mode:       synchronous")
	}
}
