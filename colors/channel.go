// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strconv"
	"strings"

	"cogentcore.org/csscolor/base/errors"
	"cogentcore.org/csscolor/math32"
	"github.com/tdewolff/parse/v2"
)

// parseNumber parses a floating point number such as 12, -0.5, .5,
// 1. or 1e3, or one of the words inf and infinity with an optional
// sign. nan is not a number. Values too large for a float32 are
// returned as the infinity of the same sign.
func parseNumber(s string) (float32, bool) {
	if s == "" {
		return 0, false
	}
	body := s
	if s[0] == '+' || s[0] == '-' {
		body = s[1:]
	}
	if body == "inf" || body == "infinity" {
		if s[0] == '-' {
			return math32.Inf(-1), true
		}
		return math32.Inf(1), true
	}
	num := fillFraction(s)
	if parse.Number([]byte(num)) != len(num) {
		return 0, false
	}
	f, err := strconv.ParseFloat(num, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return float32(f), true
}

// fillFraction adds a 0 after a decimal point that follows a digit
// but has no digits after it, so that 1. and 1.e3 match the CSS
// number grammar as 1.0 and 1.0e3.
func fillFraction(s string) string {
	i := strings.IndexByte(s, '.')
	if i <= 0 || !isDigit(s[i-1]) || (i+1 < len(s) && isDigit(s[i+1])) {
		return s
	}
	return s[:i+1] + "0" + s[i+1:]
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// parseUnit parses a number or a percentage into the range 0..1.
func parseUnit(s string) (float32, bool) {
	if num, ok := strings.CutSuffix(s, "%"); ok {
		f, ok := parseNumber(num)
		if !ok {
			return 0, false
		}
		return clampUnit(f / 100), true
	}
	f, ok := parseNumber(s)
	if !ok {
		return 0, false
	}
	return clampUnit(f), true
}

// parseByteChannel parses an unsigned integer or a percentage
// into the range 0..255. Percentages are rounded.
func parseByteChannel(s string) (uint8, bool) {
	if num, ok := strings.CutSuffix(s, "%"); ok {
		f, ok := parseNumber(num)
		if !ok {
			return 0, false
		}
		return clampByteFromFloat(f / 100 * 255), true
	}
	iv, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, false
	}
	return clampByte(uint32(iv)), true
}

// clampUnit clamps to float 0..1.
func clampUnit(f float32) float32 {
	return math32.Clamp(f, 0, 1)
}

// clampByteFromFloat rounds half away from zero and clamps
// to 0..255; infinities go to the bound of the same sign.
func clampByteFromFloat(f float32) uint8 {
	if math32.IsNaN(f) {
		return 0
	}
	return uint8(math32.Clamp(math32.Round(f), 0, 255))
}

// clampByte clamps to 0..255.
func clampByte(i uint32) uint8 {
	return uint8(min(i, 255))
}
