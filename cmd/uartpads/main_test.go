// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warthog618/go-uartpads"
)

func TestList(t *testing.T) {
	var buf bytes.Buffer
	err := list(&buf, uartpads.DefaultCatalog(), listOptions{family: "samx51", sercom: 3})
	require.Nil(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out,
		"samx51/sercom3/ioset1\n"+
			"  PAD[0]: PA17/D\n"+
			"  PAD[1]: PA16/D\n"+
			"  PAD[2]: PA18/D\n"+
			"  PAD[3]: PA19/D\n"+
			"samx51/sercom3/ioset2\n"), out)
	assert.Equal(t, 4*5, strings.Count(out, "\n"))

	buf.Reset()
	err = list(&buf, uartpads.DefaultCatalog(), listOptions{family: "samd21", sercom: -1})
	require.Nil(t, err)
	out = buf.String()
	assert.Equal(t, 6, strings.Count(out, "/default\n"))
	assert.Contains(t, out, "samd21/sercom0/default\n  PAD[0]: PA04/D PA08/C\n")

	err = list(&buf, uartpads.DefaultCatalog(), listOptions{family: "samd21", sercom: 6})
	assert.NotNil(t, err)

	err = list(&buf, uartpads.DefaultCatalog(), listOptions{family: "esp32", sercom: -1})
	assert.ErrorIs(t, err, uartpads.ErrUnknownFamily)
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	opts := resolveOptions{
		family: "samx51",
		sercom: 3,
		ioset:  "ioset1",
		rx:     "PA16/D",
		tx:     "PA17/D",
	}
	err := resolve(&buf, uartpads.DefaultCatalog(), opts)
	require.Nil(t, err)
	assert.Equal(t,
		"  ioset:      samx51/sercom3/ioset1\n"+
			"  capability: full-duplex\n"+
			"  rx:         PA16/D on PAD[1]\n"+
			"  tx:         PA17/D on PAD[0]\n"+
			"  rxpo:       1\n"+
			"  txpo:       0\n"+
			"  ctrla:      0x00100000\n",
		buf.String())

	// ioset selected from the pins
	buf.Reset()
	opts = resolveOptions{
		family: "samx51",
		sercom: 0,
		tx:     "PA08/C",
		xck:    "PA09/C",
	}
	err = resolve(&buf, uartpads.DefaultCatalog(), opts)
	require.Nil(t, err)
	assert.Contains(t, buf.String(), "samx51/sercom0/ioset3")
	assert.Contains(t, buf.String(), "  xck:        PA09/C on PAD[1]\n")
	assert.Contains(t, buf.String(), "  mode:       synchronous\n")

	patterns := []struct {
		name string
		opts resolveOptions
		err  error
	}{
		{"unknown family", resolveOptions{family: "rp2040", rx: "PA16/D"}, uartpads.ErrUnknownFamily},
		{"bad pin", resolveOptions{family: "samx51", sercom: 3, rx: "PA16"}, uartpads.ErrInvalidPin},
		{"unknown ioset", resolveOptions{family: "samx51", sercom: 3, ioset: "default", rx: "PA16/D"}, uartpads.ErrUnknownIoSet},
		{"incompatible", resolveOptions{family: "samx51", sercom: 3, ioset: "ioset1", rx: "PA08/C"}, uartpads.ErrIncompatiblePin},
		{"illegal", resolveOptions{family: "samx51", sercom: 3, ioset: "ioset1", tx: "PA19/D"}, uartpads.ErrIllegalRoutingCombination},
	}
	for _, p := range patterns {
		tf := func(t *testing.T) {
			var buf bytes.Buffer
			err := resolve(&buf, uartpads.DefaultCatalog(), p.opts)
			assert.ErrorIs(t, err, p.err)
			assert.Zero(t, buf.Len())
		}
		t.Run(p.name, tf)
	}
}

const board = `family: samd21
uarts:
  - name: console
    sercom: 0
    tx: PA10/C
    rx: PA11/C
  - name: gps
    sercom: 5
    tx: PB22/D
    rx: PB23/D
`

func TestCheck(t *testing.T) {
	var buf bytes.Buffer
	err := check(&buf, uartpads.DefaultCatalog(), strings.NewReader(board))
	require.Nil(t, err)
	out := buf.String()
	console := strings.Index(out, "console:\n")
	gps := strings.Index(out, "gps:\n")
	require.True(t, console >= 0, out)
	require.True(t, gps > console, out)
	assert.Contains(t, out, "  ioset:      samd21/sercom5/default\n")
	assert.Equal(t, 2, strings.Count(out, "  txpo:       1\n"))
	assert.Equal(t, 2, strings.Count(out, "  rxpo:       3\n"))

	buf.Reset()
	err = check(&buf, uartpads.DefaultCatalog(), strings.NewReader(board+
		"  - {name: spare, sercom: 2, tx: PA10/D, rx: PA11/D}\n"))
	assert.ErrorIs(t, err, uartpads.ErrPinInUse)
	assert.Zero(t, buf.Len())

	err = check(&buf, uartpads.DefaultCatalog(), strings.NewReader("uarts: []"))
	assert.ErrorIs(t, err, uartpads.ErrUnknownFamily)
}

func TestCheckCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.Nil(t, os.WriteFile(path, []byte(board), 0o644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"check", path})
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	require.Nil(t, err)
	assert.Contains(t, buf.String(), "gps:\n")

	rootCmd.SetArgs([]string{"check", filepath.Join(t.TempDir(), "missing.yaml")})
	err = rootCmd.Execute()
	assert.NotNil(t, err)
}
