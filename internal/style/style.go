// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style holds the rendering configuration of QR codes and
// loads it from HCL files:
//
//	background = "#ffffff"
//	foreground = "black"
//	marker     = "ff0064"
//	unset      = "808080"
//	pixel_size = 4
//	padding    = 2
//
// All attributes are optional.
package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Pixel size limits.
const (
	MinPixelSize = 2
	MaxPixelSize = 10
)

// A Style describes how a code is drawn.
type Style struct {
	Background color.RGBA // light modules and padding
	Foreground color.RGBA // dark modules
	Marker     color.RGBA // reserved modules, debug output only
	Unset      color.RGBA // unset modules, debug output only
	PixelSize  int        // image pixels per module
	Padding    int        // modules of padding on each side
}

// Default returns the default style: black on white, 4 pixels per
// module, 2 modules of padding.
func Default() Style {
	return Style{
		Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
		Foreground: color.RGBA{0x00, 0x00, 0x00, 0xff},
		Marker:     color.RGBA{0xff, 0x00, 0x64, 0xff},
		Unset:      color.RGBA{0x80, 0x80, 0x80, 0xff},
		PixelSize:  4,
		Padding:    2,
	}
}

// Scale returns s.PixelSize clamped to [MinPixelSize, MaxPixelSize].
func (s Style) Scale() int {
	return min(max(s.PixelSize, MinPixelSize), MaxPixelSize)
}

// Border returns s.Padding, or 0 if it is negative.
func (s Style) Border() int {
	return max(s.Padding, 0)
}

// hclStyle is the file representation of Style.
type hclStyle struct {
	Background *string `hcl:"background,optional"`
	Foreground *string `hcl:"foreground,optional"`
	Marker     *string `hcl:"marker,optional"`
	Unset      *string `hcl:"unset,optional"`
	PixelSize  *int    `hcl:"pixel_size,optional"`
	Padding    *int    `hcl:"padding,optional"`
}

// Load reads a style from the HCL file at path.  Attributes missing
// from the file keep their default values.
func Load(path string) (Style, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return Style{}, fmt.Errorf("failed to parse style file %s: %w", path, diags)
	}
	return decode(f, path)
}

// Parse parses a style from HCL source.  filename is used in error
// messages.
func Parse(src []byte, filename string) (Style, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Style{}, fmt.Errorf("failed to parse style file %s: %w", filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, filename string) (Style, error) {
	var h hclStyle
	if diags := gohcl.DecodeBody(f.Body, nil, &h); diags.HasErrors() {
		return Style{}, fmt.Errorf("failed to decode style file %s: %w", filename, diags)
	}
	s := Default()
	for _, c := range []struct {
		name string
		src  *string
		dst  *color.RGBA
	}{
		{"background", h.Background, &s.Background},
		{"foreground", h.Foreground, &s.Foreground},
		{"marker", h.Marker, &s.Marker},
		{"unset", h.Unset, &s.Unset},
	} {
		if c.src == nil {
			continue
		}
		col, err := ParseColor(*c.src)
		if err != nil {
			return Style{}, fmt.Errorf("%s: %s: %w", filename, c.name, err)
		}
		*c.dst = col
	}
	if h.PixelSize != nil {
		s.PixelSize = *h.PixelSize
	}
	if h.Padding != nil {
		if *h.Padding < 0 {
			return Style{}, fmt.Errorf("%s: padding %d is negative", filename, *h.Padding)
		}
		s.Padding = *h.Padding
	}
	return s, nil
}

// Colour names accepted by ParseColor.
var names = map[string]color.RGBA{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"green":       {0x00, 0xff, 0x00, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"yellow":      {0xff, 0xff, 0x00, 0xff},
	"grey":        {0xbe, 0xbe, 0xbe, 0xff},
	"gray":        {0xbe, 0xbe, 0xbe, 0xff},
	"transparent": {},
}

// ParseColor parses a colour given as 3, 4, 6 or 8 hex digits, RGB[A]
// or RRGGBB[AA], optionally preceded by '#', or as one of a few colour
// names.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := names[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return c, nil
	}
	h := strings.TrimPrefix(s, "#")
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(h) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("%q: bad colour spec", s)
	}
	return color.RGBA{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}

// Hex returns c as "#rrggbb", or "#rrggbbaa" if c is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
