// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/warthog618/go-uartpads"
)

type listOptions struct {
	family string
	sercom int
}

var (
	listOpts = listOptions{}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the IoSets of a family",
		Long:  "List the pins connected to each pad of each IoSet. If no SERCOM is given then all SERCOMs of the family are listed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.OutOrStdout(), uartpads.DefaultCatalog(), listOpts)
		},
	}
)

func init() {
	listCmd.Flags().StringVarP(&listOpts.family, "family", "f", "samx51", "peripheral family (samd21, samx51)")
	listCmd.Flags().IntVarP(&listOpts.sercom, "sercom", "s", -1, "SERCOM instance")
}

func list(w io.Writer, c *uartpads.Catalog, opts listOptions) error {
	family, err := uartpads.ParseFamily(opts.family)
	if err != nil {
		return err
	}
	sercoms := c.Sercoms(family)
	if opts.sercom >= 0 {
		sercoms = []int{opts.sercom}
	}
	for _, sercom := range sercoms {
		sets := c.IoSets(family, sercom)
		if len(sets) == 0 {
			return errors.Errorf("%s has no sercom%d", family, sercom)
		}
		for _, s := range sets {
			fmt.Fprintln(w, s)
			for slot := uartpads.Pad0; slot < uartpads.NumSlots; slot++ {
				pins := s.Pins(slot)
				names := make([]string, len(pins))
				for i, p := range pins {
					names[i] = p.String()
				}
				fmt.Fprintf(w, "  %s: %s\n", slot, strings.Join(names, " "))
			}
		}
	}
	return nil
}
