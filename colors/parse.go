// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strconv"
	"strings"
	"unicode"

	"cogentcore.org/csscolor/base/errors"
)

// FromString returns the color value specified by the given CSS color
// string. It returns a [*ParseError] for any invalid input; see
// [MustFromString] and [LogFromString] for versions that do not
// return an error. FromString accepts the following forms, with any
// whitespace anywhere in the string ignored and case-insensitive
// matching throughout:
//   - a named color from [Map], such as "red" or "transparent"
//   - #rgb and #rrggbb hex values
//   - rgb(r, g, b) and rgba(r, g, b, a), where r, g, and b are
//     integers (0-255) or percentages and a is a number (0-1) or a
//     percentage
//   - hsl(h, s, l) and hsla(h, s, l, a), where h is a hue angle in
//     degrees, and s and l are numbers (0-1) or percentages
//
// Out of range values are clamped.
func FromString(str string) (Color, error) {
	s := normalize(str)
	if s == "" {
		return Color{}, parseError(str)
	}
	if c, ok := Map[s]; ok {
		return c, nil
	}
	var c Color
	var ok bool
	if s[0] == '#' {
		c, ok = parseHex(s[1:])
	} else {
		c, ok = parseFunc(s)
	}
	if !ok {
		return Color{}, parseError(str)
	}
	return c, nil
}

// Parse is the same as [FromString].
func Parse(str string) (Color, error) {
	return FromString(str)
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string) Color {
	return errors.Must1(FromString(str))
}

// LogFromString returns a color value from the given string.
// It logs any resulting error and returns the zero [Color];
// see [FromString] for more information and a version
// that returns an error.
func LogFromString(str string) Color {
	return errors.Log1(FromString(str))
}

// FromHex parses the given #rgb or #rrggbb hex color string.
func FromHex(hex string) (Color, error) {
	s := normalize(hex)
	if !strings.HasPrefix(s, "#") {
		return Color{}, parseError(hex)
	}
	c, ok := parseHex(s[1:])
	if !ok {
		return Color{}, parseError(hex)
	}
	return c, nil
}

// normalize removes all whitespace from s and lowercases it.
func normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.ToLower(s)
}

// parseHex parses the digits following the # of a hex color.
func parseHex(digits string) (Color, bool) {
	switch len(digits) {
	case 3:
		iv, err := strconv.ParseUint(digits, 16, 16)
		if err != nil || iv > 0xfff {
			return Color{}, false
		}
		r, g, b := uint8(iv>>8), uint8(iv>>4&0xf), uint8(iv&0xf)
		return Color{r * 17, g * 17, b * 17, 1}, true
	case 6:
		iv, err := strconv.ParseUint(digits, 16, 32)
		if err != nil || iv > 0xffffff {
			return Color{}, false
		}
		return Color{uint8(iv >> 16), uint8(iv >> 8), uint8(iv), 1}, true
	}
	return Color{}, false
}

// parseFunc parses the functional notations name(arg, ...),
// where s has already been normalized.
func parseFunc(s string) (Color, bool) {
	op := strings.IndexByte(s, '(')
	ep := strings.IndexByte(s, ')')
	if op <= 0 || ep != len(s)-1 || ep < op {
		return Color{}, false
	}
	name := s[:op]
	args := strings.Split(s[op+1:ep], ",")
	switch name {
	case "rgb":
		if len(args) != 3 {
			return Color{}, false
		}
		return parseRGB(args)
	case "rgba":
		if len(args) != 4 {
			return Color{}, false
		}
		return withAlpha(parseRGB, args)
	case "hsl":
		if len(args) != 3 {
			return Color{}, false
		}
		return parseHSL(args)
	case "hsla":
		if len(args) != 4 {
			return Color{}, false
		}
		return withAlpha(parseHSL, args)
	}
	return Color{}, false
}

// parseRGB parses the three r, g, b arguments of rgb().
func parseRGB(args []string) (Color, bool) {
	r, ok := parseByteChannel(args[0])
	if !ok {
		return Color{}, false
	}
	g, ok := parseByteChannel(args[1])
	if !ok {
		return Color{}, false
	}
	b, ok := parseByteChannel(args[2])
	if !ok {
		return Color{}, false
	}
	return Color{r, g, b, 1}, true
}

// withAlpha parses the first three arguments with the given
// function and the fourth one as the alpha value.
func withAlpha(parse func(args []string) (Color, bool), args []string) (Color, bool) {
	a, ok := parseUnit(args[3])
	if !ok {
		return Color{}, false
	}
	c, ok := parse(args[:3])
	if !ok {
		return Color{}, false
	}
	c.A = clampUnit(a)
	return c, true
}
