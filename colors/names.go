// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"golang.org/x/image/colornames"
)

// Map contains the named colors defined in the CSS Color Module
// Level 3 keyword list, plus "transparent". It is read-only.
var Map = func() map[string]Color {
	m := make(map[string]Color, len(colornames.Map)+1)
	m["transparent"] = Transparent
	for name, c := range colornames.Map {
		m[name] = Color{c.R, c.G, c.B, 1}
	}
	return m
}()

// Names contains the keys of [Map] in a fixed order:
// "transparent" first, then the color keywords alphabetically.
var Names = append([]string{"transparent"}, colornames.Names...)

// FromName returns the color value specified by the given CSS
// color keyword. Matching ignores case and whitespace.
func FromName(name string) (Color, error) {
	c, ok := Map[normalize(name)]
	if !ok {
		return Color{}, parseError(name)
	}
	return c, nil
}
