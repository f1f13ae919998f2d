// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// uartpads is a tool for checking SERCOM UART pin assignments and
// determining the RXPO and TXPO codes they require.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "uartpads",
	Short:         "Check SERCOM UART pin assignments",
	Long:          "Check the pins assigned to SERCOM UARTs against the datasheet pad routing rules and report the RXPO and TXPO codes.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddCommand(listCmd, resolveCmd, checkCmd)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("uartpads: ")
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
