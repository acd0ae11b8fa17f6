// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"cogentcore.org/csscolor/colors"
	"cogentcore.org/csscolor/config"
	"cogentcore.org/csscolor/palette"
	"github.com/muesli/termenv"
)

// printer writes colors in the configured output format.
type printer struct {
	w      io.Writer
	json   bool
	swatch bool
	term   *termenv.Output
}

func newPrinter(w io.Writer, cfg *config.Config, opts ...termenv.OutputOption) *printer {
	return &printer{
		w:      w,
		json:   cfg.Format == config.FormatJSON,
		swatch: cfg.Swatch,
		term:   termenv.NewOutput(w, opts...),
	}
}

// colorJSON is the json output for one color.
type colorJSON struct {
	Name  string  `json:"name,omitempty"`
	Input string  `json:"input,omitempty"`
	R     uint8   `json:"r"`
	G     uint8   `json:"g"`
	B     uint8   `json:"b"`
	A     float32 `json:"a"`
}

// color prints the color parsed from the given input.
func (p *printer) color(input string, c colors.Color) error {
	if p.json {
		return p.encode(colorJSON{Input: input, R: c.R, G: c.G, B: c.B, A: c.A})
	}
	_, err := fmt.Fprintln(p.w, p.swatchFor(c)+rgbaText(c))
	return err
}

// named prints a named color.
func (p *printer) named(name string, c colors.Color) error {
	if p.json {
		return p.encode(colorJSON{Name: name, R: c.R, G: c.G, B: c.B, A: c.A})
	}
	_, err := fmt.Fprintln(p.w, p.swatchFor(c)+name)
	return err
}

// palette prints every entry of the palette with its definition.
func (p *printer) palette(pal *palette.Palette) error {
	if p.json {
		for _, name := range pal.Names() {
			c, _ := pal.Color(name)
			spec, _ := pal.Spec(name)
			if err := p.encode(colorJSON{Name: name, Input: spec, R: c.R, G: c.G, B: c.B, A: c.A}); err != nil {
				return err
			}
		}
		return nil
	}
	if pal.Name != "" {
		if _, err := fmt.Fprintln(p.w, pal.Name); err != nil {
			return err
		}
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for _, name := range pal.Names() {
		c, _ := pal.Color(name)
		spec, _ := pal.Spec(name)
		fmt.Fprintf(tw, "%s%s\t%s\t%s\n", p.swatchFor(c), name, spec, rgbaText(c))
	}
	return tw.Flush()
}

func (p *printer) encode(v colorJSON) error {
	return json.NewEncoder(p.w).Encode(v)
}

// swatchFor returns a block in the given color followed by a space,
// or "" if swatches are off. Transparent colors get a blank block,
// and translucent ones a shaded block.
func (p *printer) swatchFor(c colors.Color) string {
	if !p.swatch {
		return ""
	}
	if c.IsTransparent() {
		return "     "
	}
	block := "    "
	if !c.IsOpaque() {
		block = "░░░░"
	}
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return p.term.String(block).Background(p.term.Color(hex)).String() + " "
}

// rgbaText formats c as "r g b a".
func rgbaText(c colors.Color) string {
	return fmt.Sprintf("%d %d %d %s", c.R, c.G, c.B, strconv.FormatFloat(float64(c.A), 'g', -1, 32))
}
