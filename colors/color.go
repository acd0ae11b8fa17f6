// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses CSS color strings (named colors, hex
// values, and the rgb, rgba, hsl and hsla functions) into [Color] values.
package colors

import (
	"fmt"
	"image/color"

	"cogentcore.org/csscolor/math32"
)

// Color is a parsed CSS color. R, G and B are 0..255 channel values
// that are not premultiplied by alpha, and A is the opacity from
// 0 (fully transparent) to 1 (fully opaque).
type Color struct {
	R, G, B uint8
	A       float32
}

// Standard colors that are used often enough to warrant a name.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{255, 255, 255, 1}
)

// RGBA implements the [color.Color] interface. It returns
// alpha-premultiplied values in the range 0x0000 - 0xffff.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.AsNRGBA().RGBA()
}

// AsNRGBA returns the color as a non-premultiplied [color.NRGBA],
// with alpha rounded to the nearest 0..255 value.
func (c Color) AsNRGBA() color.NRGBA {
	a := math32.Round(math32.Clamp(c.A, 0, 1) * 255)
	return color.NRGBA{c.R, c.G, c.B, uint8(a)}
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA].
func (c Color) AsRGBA() color.RGBA {
	return color.RGBAModel.Convert(c.AsNRGBA()).(color.RGBA)
}

// IsTransparent returns whether the color is fully transparent.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// IsOpaque returns whether the color is fully opaque.
func (c Color) IsOpaque() bool {
	return c.A == 1
}

// FromColor converts any [color.Color] into a [Color].
func FromColor(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, float32(n.A) / 255}
}

// FromAny returns a color from the given value of any type.
// It handles values of types string and [color.Color].
func FromAny(val any) (Color, error) {
	switch valv := val.(type) {
	case string:
		return FromString(valv)
	case color.Color:
		return FromColor(valv), nil
	default:
		return Color{}, fmt.Errorf("colors.FromAny: could not set color from value %v of type %T", val, val)
	}
}
