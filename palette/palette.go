// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides named theme colors loaded from TOML or YAML
// files. Each entry maps a name to a CSS color string or to the name of
// another entry in the same palette.
package palette

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/csscolor/base/errors"
	"cogentcore.org/csscolor/colors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a palette file.
type Format int

const (
	// TOML is a file with a [colors] table.
	TOML Format = iota

	// YAML is a file with a colors: mapping.
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath returns the [Format] for the extension of the given path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("palette: unknown file format for %s", path)
}

// ErrCycle is returned when palette entries refer to each other
// in a loop.
var ErrCycle = errors.New("reference cycle")

// file is the on-disk layout of a palette.
type file struct {
	Name   string            `toml:"name" yaml:"name"`
	Colors map[string]string `toml:"colors" yaml:"colors"`
}

// Palette is a resolved set of named colors. It is read-only once
// created and safe for concurrent use.
type Palette struct {

	// Name is the optional name given in the file.
	Name string

	specs  map[string]string
	colors map[string]colors.Color
	names  []string
}

// Parse decodes and resolves a palette in the given format.
func Parse(data []byte, format Format) (*Palette, error) {
	var f file
	switch format {
	case TOML:
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&f); err != nil {
			return nil, fmt.Errorf("palette: decoding toml: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("palette: decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("palette: unknown format %v", format)
	}
	return New(f.Name, f.Colors)
}

// Load reads and resolves the palette file at the given path,
// using [FormatFromPath] to pick the format.
func Load(path string) (*Palette, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("palette: reading %s: %w", path, err)
	}
	return Parse(data, format)
}

// New returns a palette with the given name and entries, which map
// entry names to CSS color strings or to other entry names.
// Entry names are matched ignoring whitespace and case, and
// they take precedence over CSS color keywords.
func New(name string, entries map[string]string) (*Palette, error) {
	p := &Palette{
		Name:   name,
		specs:  make(map[string]string, len(entries)),
		colors: make(map[string]colors.Color, len(entries)),
	}
	for key, spec := range entries {
		k := normalize(key)
		if k == "" {
			return nil, fmt.Errorf("palette: empty entry name %q", key)
		}
		if _, has := p.specs[k]; has {
			return nil, fmt.Errorf("palette: duplicate entry %q", k)
		}
		p.specs[k] = spec
		p.names = append(p.names, k)
	}
	slices.Sort(p.names)
	for _, k := range p.names {
		if _, err := p.resolve(k, nil); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// resolve returns the color of the entry with the given normalized
// name. stack holds the entries currently being resolved.
func (p *Palette) resolve(name string, stack []string) (colors.Color, error) {
	if c, ok := p.colors[name]; ok {
		return c, nil
	}
	if i := slices.Index(stack, name); i >= 0 {
		chain := strings.Join(stack[i:], " -> ") + " -> " + name
		return colors.Color{}, fmt.Errorf("palette: entry %q: %w: %s", stack[i], ErrCycle, chain)
	}
	spec := p.specs[name]
	var c colors.Color
	var err error
	if ref := normalize(spec); hasEntry(p.specs, ref) {
		c, err = p.resolve(ref, append(stack, name))
		if err != nil {
			return colors.Color{}, err
		}
	} else {
		c, err = colors.FromString(spec)
		if err != nil {
			return colors.Color{}, fmt.Errorf("palette: entry %q: %w", name, err)
		}
	}
	p.colors[name] = c
	return c, nil
}

func hasEntry(specs map[string]string, name string) bool {
	_, ok := specs[name]
	return ok
}

// Color returns the color of the named entry.
func (p *Palette) Color(name string) (colors.Color, bool) {
	c, ok := p.colors[normalize(name)]
	return c, ok
}

// Spec returns the color string the named entry was defined with.
func (p *Palette) Spec(name string) (string, bool) {
	s, ok := p.specs[normalize(name)]
	return s, ok
}

// Resolve returns the color of the named entry if there is one,
// and otherwise parses s with [colors.FromString].
func (p *Palette) Resolve(s string) (colors.Color, error) {
	if p != nil {
		if c, ok := p.Color(s); ok {
			return c, nil
		}
	}
	return colors.FromString(s)
}

// Names returns the normalized entry names in sorted order.
func (p *Palette) Names() []string {
	return slices.Clone(p.names)
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.names)
}

// normalize removes all whitespace and lowercases.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
