// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"cogentcore.org/csscolor/base/errors"
)

// ErrParse is matched by every error returned for input that is not a
// valid CSS color; use errors.Is(err, ErrParse).
var ErrParse = errors.New("invalid CSS color")

// ParseError is the error returned for input that is not a valid CSS
// color. There is a single kind of parse failure: the reason is not
// classified any further.
type ParseError struct {
	// Input is the string as passed by the caller.
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("colors: invalid CSS color %q", e.Input)
}

// Is reports whether target is [ErrParse].
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func parseError(input string) error {
	return &ParseError{Input: input}
}
