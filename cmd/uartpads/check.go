// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/warthog618/go-uartpads"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Check the UARTs of a board plan",
	Long:  "Resolve every UART described in a board plan and report the routing codes of each. Fails if any UART cannot be resolved or if a pin is shared between UARTs.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		return check(cmd.OutOrStdout(), uartpads.DefaultCatalog(), f)
	},
}

func check(w io.Writer, c *uartpads.Catalog, r io.Reader) error {
	p, err := uartpads.LoadPlan(r)
	if err != nil {
		return err
	}
	configs, err := p.Resolve(c)
	if err != nil {
		return err
	}
	for _, u := range p.UARTs {
		printConfig(w, u.Name, configs[u.Name])
	}
	return nil
}
