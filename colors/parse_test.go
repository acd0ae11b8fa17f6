// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	type test struct {
		str  string
		want Color
	}
	tests := []test{
		{"transparent", Color{0, 0, 0, 0}},
		{"red", Color{255, 0, 0, 1}},
		{"RED", Color{255, 0, 0, 1}},
		{"ReD", Color{255, 0, 0, 1}},
		{"  red\t", Color{255, 0, 0, 1}},
		{"cornflowerblue", Color{100, 149, 237, 1}},
		{"#000000", Color{0, 0, 0, 1}},
		{"#ffffff", Color{255, 255, 255, 1}},
		{"#FFF", Color{255, 255, 255, 1}},
		{"#abc", Color{0xaa, 0xbb, 0xcc, 1}},
		{"#e66465", Color{0xe6, 0x64, 0x65, 1}},
		{"rgb(255,0,0)", Color{255, 0, 0, 1}},
		{"RGB(1,2,3)", Color{1, 2, 3, 1}},
		{"rgb( 1 , 2, 3 )", Color{1, 2, 3, 1}},
		{"r g b(1,\n2,3)\r\n", Color{1, 2, 3, 1}},
		{"rgb(+1,2,3)", Color{1, 2, 3, 1}},
		{"rgb(300,256,4000000000)", Color{255, 255, 255, 1}},
		{"rgb(50%,50%,50%)", Color{128, 128, 128, 1}},
		{"rgb(100%, 0%, 120%)", Color{255, 0, 255, 1}},
		{"rgb(-10%, 0.5%, 1e1%)", Color{0, 1, 26, 1}},
		{"rgb(1e999%, -1e999%, 0)", Color{255, 0, 0, 1}},
		{"rgba(0,0,0,0.5)", Color{0, 0, 0, 0.5}},
		{"rgba(0,0,0,.5)", Color{0, 0, 0, 0.5}},
		{"rgba(0,0,0,50%)", Color{0, 0, 0, 0.5}},
		{"rgba(0,0,0,2)", Color{0, 0, 0, 1}},
		{"rgba(0,0,0,-1)", Color{0, 0, 0, 0}},
		{"rgba(0,0,0,1e999)", Color{0, 0, 0, 1}},
		{"rgba(10, 20, 30, 0)", Color{10, 20, 30, 0}},
		{"hsl(0,100%,50%)", Color{255, 0, 0, 1}},
		{"hsl(120,100%,50%)", Color{0, 255, 0, 1}},
		{"hsl(240,100%,50%)", Color{0, 0, 255, 1}},
		{"hsl(360,100%,50%)", Color{255, 0, 0, 1}},
		{"hsl(0, 1, 0.5)", Color{255, 0, 0, 1}},
		{"hsl(0, 0%, 50%)", Color{128, 128, 128, 1}},
		{"hsl(0, 0%, 100%)", Color{255, 255, 255, 1}},
		{"hsl(0, 0%, 0%)", Color{0, 0, 0, 1}},
		{"hsl(0, 200%, -50%)", Color{0, 0, 0, 1}},
		{"hsla(120, 100%, 50%, 0.25)", Color{0, 255, 0, 0.25}},
		{"hsla(120, 100%, 50%, 25%)", Color{0, 255, 0, 0.25}},
		{"HSLA(240,100%,50%,7)", Color{0, 0, 255, 1}},
		{"rgba(0,0,0,1.)", Color{0, 0, 0, 1}},
		{"rgba(0, 0, 0, .5)", Color{0, 0, 0, 0.5}},
		{"hsl(120.,100%,50%)", Color{0, 255, 0, 1}},
		{"hsl(1.2e2, 1., 50.%)", Color{0, 255, 0, 1}},
		{"rgba(0,0,0,inf)", Color{0, 0, 0, 1}},
		{"rgba(0,0,0,-Infinity)", Color{0, 0, 0, 0}},
		{"rgb(inf%, -INF%, 50.%)", Color{255, 0, 128, 1}},
		{"hsla(0, INF, 50%, +inf%)", Color{255, 0, 0, 1}},
	}
	for _, test := range tests {
		have, err := FromString(test.str)
		if assert.NoError(t, err, test.str) {
			assert.Equal(t, test.want, have, test.str)
		}
	}
}

func TestFromStringInvalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"\t\n",
		"notacolor",
		"#",
		"#12",
		"#1234",
		"#12345",
		"#1234567",
		"#ggg",
		"#+ff",
		"#-12",
		"#0x1",
		"ff0000",
		"rgb(1,2)",
		"rgb(1,2,3,4)",
		"rgba(1,2,3)",
		"rgba(1,2,3,4,5)",
		"hsl(1,2,3,4,5)",
		"hsla(1,2%,3%)",
		"rgb(1,2,3",
		"rgb1,2,3)",
		"rgb(1,2,3))",
		"rgb(1,2,3)x",
		")rgb(1,2,3(",
		"(1,2,3)",
		"foo(1,2,3)",
		"rgb(,,)",
		"rgb(a,b,c)",
		"rgb(-5,0,0)",
		"rgb(1.5,0,0)",
		"rgb(1.,0,0)",
		"rgb(0x10,0,0)",
		"rgb(5%%,0,0)",
		"rgb(%,0,0)",
		"rgb(99999999999,0,0)",
		"rgb(nan,0,0)",
		"rgba(0,0,0,nan)",
		"rgba(0,0,0,+-inf)",
		"hsl(-infinity,100%,50%)",
		"hsl(+inf,100%,50%)",
		"rgb(inf,0,0)",
		"rgba(0,0,0,1e)",
		"hsl(120deg,100%,50%)",
		"hsl(50%,100%,50%)",
		"hsl(inf,100%,50%)",
		"hsl(1e999,100%,50%)",
		"hsl(0,100,50%)x",
		"rgb((1,2,3)",
	}
	for _, test := range tests {
		have, err := FromString(test)
		if assert.Error(t, err, "%q", test) {
			assert.ErrorIs(t, err, ErrParse, test)
			assert.Equal(t, Color{}, have, test)
		}
	}
}

func TestParseError(t *testing.T) {
	_, err := FromString("rgb(1,2)")
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "rgb(1,2)", perr.Input)
	assert.Equal(t, `colors: invalid CSS color "rgb(1,2)"`, err.Error())
	assert.ErrorIs(t, fmt.Errorf("theme: %w", err), ErrParse)
	assert.False(t, errors.Is(errors.New("other"), ErrParse))
}

func TestHex3Expansion(t *testing.T) {
	for i := 0; i <= 0xfff; i++ {
		r, g, b := uint8(i>>8), uint8(i>>4&0xf), uint8(i&0xf)
		short := fmt.Sprintf("#%03x", i)
		long := fmt.Sprintf("#%02x%02x%02x", r*17, g*17, b*17)
		have, err := FromString(short)
		require.NoError(t, err, short)
		assert.Equal(t, Color{r * 17, g * 17, b * 17, 1}, have, short)
		assert.Equal(t, MustFromString(long), have, short)
	}
}

func TestHueWraparound(t *testing.T) {
	assert.Equal(t, MustFromString("hsl(240,100%,50%)"), MustFromString("hsl(-120,100%,50%)"))
	assert.Equal(t, MustFromString("hsl(90,60%,40%)"), MustFromString("hsl(810,60%,40%)"))
	assert.Equal(t, MustFromString("hsl(90,60%,40%)"), MustFromString("hsl(-630,60%,40%)"))
}

func TestWhitespaceAndCase(t *testing.T) {
	assert.Equal(t, MustFromString("rgb(1,2,3)"), MustFromString("rgb( 1 , 2, 3 )"))
	assert.Equal(t, MustFromString("hsla(10,20%,30%,0.4)"), MustFromString(" HSLA ( 10 , 20 % , 30 % , 0.4 ) "))
	assert.Equal(t, MustFromString("#a1b2c3"), MustFromString("#A1B2C3"))
	for _, name := range Names {
		assert.Equal(t, Map[name], MustFromString(" "+toUpper(name)+" "), name)
	}
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func TestIdempotence(t *testing.T) {
	inputs := []string{"hsla(33.3, 47%, 61%, 0.123)", "rgba(1,2,3,0.3333)", "#abc", "peru", "hsl(-1e9, 1, 0.5)"}
	for _, in := range inputs {
		a, err := FromString(in)
		require.NoError(t, err, in)
		b, err := FromString(in)
		require.NoError(t, err, in)
		assert.Equal(t, a, b, in)
		assert.Equal(t, math.Float32bits(a.A), math.Float32bits(b.A), in)
	}
}

func TestConcurrentParse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range Names {
				c, err := FromString(name)
				assert.NoError(t, err)
				assert.Equal(t, Map[name], c)
			}
		}()
	}
	wg.Wait()
}

func TestFromHex(t *testing.T) {
	c, err := FromHex(" #FfF ")
	assert.NoError(t, err)
	assert.Equal(t, White, c)

	c, err = FromHex("#6495ed")
	assert.NoError(t, err)
	assert.Equal(t, Map["cornflowerblue"], c)

	_, err = FromHex("fff")
	assert.ErrorIs(t, err, ErrParse)
	_, err = FromHex("red")
	assert.ErrorIs(t, err, ErrParse)
}

func TestMustAndLog(t *testing.T) {
	assert.Equal(t, Black, MustFromString("black"))
	assert.Panics(t, func() { MustFromString("nope") })
	assert.Equal(t, Color{}, LogFromString("nope"))
	assert.Equal(t, White, LogFromString("white"))

	c, err := Parse("lime")
	assert.NoError(t, err)
	assert.Equal(t, Color{0, 255, 0, 1}, c)
}

func TestFromAny(t *testing.T) {
	c, err := FromAny("navy")
	assert.NoError(t, err)
	assert.Equal(t, Color{0, 0, 128, 1}, c)

	c, err = FromAny(color.RGBA{255, 0, 0, 255})
	assert.NoError(t, err)
	assert.Equal(t, Color{255, 0, 0, 1}, c)

	c, err = FromAny(Color{1, 2, 3, 0.5})
	assert.NoError(t, err)
	assert.Equal(t, Color{1, 2, 3, 0.5}, c)

	_, err = FromAny(12)
	assert.Error(t, err)
}

func TestColorConversions(t *testing.T) {
	c := Color{255, 0, 0, 0.5}
	assert.Equal(t, color.NRGBA{255, 0, 0, 128}, c.AsNRGBA())
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, c.AsRGBA())

	r, g, b, a := White.RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})

	assert.Equal(t, Color{10, 20, 30, float32(128) / 255}, FromColor(color.NRGBA{10, 20, 30, 128}))
	assert.Equal(t, Color{}, FromColor(nil))

	assert.True(t, Transparent.IsTransparent())
	assert.False(t, Transparent.IsOpaque())
	assert.True(t, Black.IsOpaque())
	assert.False(t, MustFromString("rgba(0,0,0,0.5)").IsOpaque())
}
