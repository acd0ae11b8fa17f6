// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/csscolor/math32"
)

// parseHSL parses the three h, s, l arguments of hsl().
// The hue is a finite number of degrees; percentages are not allowed.
func parseHSL(args []string) (Color, bool) {
	h, ok := parseNumber(args[0])
	if !ok || math32.IsInf(h, 0) {
		return Color{}, false
	}
	h = math32.Wrap(h, 360) / 360
	s, ok := parseUnit(args[1])
	if !ok {
		return Color{}, false
	}
	l, ok := parseUnit(args[2])
	if !ok {
		return Color{}, false
	}
	r, g, b := HSLToRGB(h, s, l)
	return Color{r, g, b, 1}, true
}

// HSLToRGB converts the given hue (0..1, a fraction of a full turn),
// saturation (0..1) and lightness (0..1) to 0..255 red, green and blue
// channel values, using the algorithm from the CSS Color Module Level 3.
func HSLToRGB(h, s, l float32) (r, g, b uint8) {
	var m2 float32
	if l <= 0.5 {
		m2 = l * (s + 1)
	} else {
		m2 = l + s - l*s
	}
	m1 := l*2 - m2
	r = clampByteFromFloat(hueToChannel(m1, m2, h+1.0/3.0) * 255)
	g = clampByteFromFloat(hueToChannel(m1, m2, h) * 255)
	b = clampByteFromFloat(hueToChannel(m1, m2, h-1.0/3.0) * 255)
	return
}

// hueToChannel returns one channel for the given hue offset.
// h is brought into range with a single wraparound step.
func hueToChannel(m1, m2, h float32) float32 {
	if h < 0 {
		h++
	} else if h > 1 {
		h--
	}
	switch {
	case h*6 < 1:
		return m1 + (m2-m1)*h*6
	case h*2 < 1:
		return m2
	case h*3 < 2:
		return m1 + (m2-m1)*(2.0/3.0-h)*6
	}
	return m1
}
