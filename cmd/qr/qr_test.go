// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unixdj/qrgen"
)

func encode(t *testing.T) *qr.Code {
	t.Helper()
	c, err := qr.Encode("HELLO WORLD", qr.Alphanumeric, qr.Q, nil)
	require.NoError(t, err)
	return c
}

func resetRandr() {
	g.cx, g.inc = 0, [2]int{1, 1}
}

func TestRandr(t *testing.T) {
	defer resetRandr()
	orig := encode(t)
	siz := orig.Size

	resetRandr()
	flip()
	c := randr(encode(t))
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			require.Equal(t, orig.Black(siz-1-x, y), c.Black(x, y),
				"flipped (%d, %d)", x, y)
		}
	}

	resetRandr()
	rotate()
	c = randr(encode(t))
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			require.Equal(t, orig.Black(siz-1-y, x), c.Black(x, y),
				"rotated (%d, %d)", x, y)
		}
	}

	// Four rotations and two flips are the identity.
	resetRandr()
	for range 4 {
		rotate()
	}
	flip()
	flip()
	c = randr(encode(t))
	require.True(t, slices.Equal(orig.Bitmap, c.Bitmap))
}

func TestColour(t *testing.T) {
	var c colour
	require.NoError(t, c.Set("#ff0064", nil))
	require.Equal(t, colour{0xff, 0x00, 0x64, 0xff}, c)
	require.Equal(t, "#ff0064", c.String())
	require.Error(t, c.Set("fuchsia-ish", nil))
}

func TestEPS(t *testing.T) {
	c := encode(t)
	var b bytes.Buffer
	require.NoError(t, eps(c, &b))
	s := b.String()
	require.True(t, strings.HasPrefix(s, "%!PS-Adobe-2.0 EPSF-2.0\n"))
	require.Contains(t, s, "%%Title: QR Code 1-Q\n")
	require.Contains(t, s, "1 1 1 setrgbcolor\n1 0 rlineto")
	require.Contains(t, s, "grestore\n0 0 0 setrgbcolor\n")
	rows := 0
	for _, l := range strings.Split(s, "\n") {
		if l == "r" || strings.HasSuffix(l, " p r") {
			rows++
		}
	}
	require.Equal(t, c.Size, rows)
	require.True(t, strings.HasSuffix(s, "%%Trailer\n"))

	c.Palette = &[2]color.Color{color.White, color.RGBA{0xff, 0, 0, 0xff}}
	c.Reverse = true
	b.Reset()
	require.NoError(t, eps(c, &b))
	require.Contains(t, b.String(), "1 0 0 setrgbcolor\n1 0 rlineto")
	require.Contains(t, b.String(), "grestore\n1 1 1 setrgbcolor\n")
}
