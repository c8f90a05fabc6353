// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes.

Encode runs the encoding pipeline of package coding on a single
segment of text and returns a Code, which can be rendered as an
image, PNG, PBM, HTML or terminal text.
*/
package qr // import "github.com/unixdj/qrgen"

import (
	"errors"
	"image"
	"image/color"
	"strings"

	"github.com/unixdj/qrgen/coding"
	"github.com/unixdj/qrgen/internal/style"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	// A Level denotes a QR error correction level.
	Level = coding.Level
	// A Mode is a QR data encoding mode.
	Mode = coding.Mode
	// A Style describes how a Code is drawn.
	Style = style.Style
)

// Error correction levels, from least to most tolerant of errors.
const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

// Encoding modes.
const (
	Numeric      = coding.Numeric
	Alphanumeric = coding.Alphanumeric
	Byte         = coding.Byte
	Kanji        = coding.Kanji
)

// Pixel size limits of Style.
const (
	MinPixelSize = style.MinPixelSize
	MaxPixelSize = style.MaxPixelSize
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// Options control Encode.  A nil *Options is the same as the zero
// value.
type Options struct {
	coding.Options
	Style *Style // rendering style; nil means DefaultStyle()
	Trace *Trace // if not nil, receives the stage log
}

// DefaultStyle returns the default rendering style.
func DefaultStyle() Style { return style.Default() }

// LoadStyle reads a rendering style from an HCL file.
func LoadStyle(path string) (Style, error) { return style.Load(path) }

// logger returns the stage logger: o.Logger or the package logger,
// teed into o.Trace.
func (o *Options) logger() *zap.Logger {
	if o == nil {
		return coding.Logger()
	}
	l := o.Logger
	if l == nil {
		l = coding.Logger()
	}
	if o.Trace != nil {
		l = zap.New(zapcore.NewTee(l.Core(), o.Trace))
	}
	return l
}

func (o *Options) codingOptions(log *zap.Logger) *coding.Options {
	var co coding.Options
	if o != nil {
		co = o.Options
	}
	co.Logger = log
	return &co
}

func (o *Options) style() Style {
	if o == nil || o.Style == nil {
		return style.Default()
	}
	return *o.Style
}

// Encode returns an encoding of text in mode m at the given error
// correction level.
func Encode(text string, m Mode, l Level, opts *Options) (*Code, error) {
	req := coding.Request{Text: text, Mode: m, Level: l}
	sym, err := coding.Encode(req, opts.codingOptions(opts.logger()))
	if err != nil {
		return nil, err
	}
	c := newCode(sym)
	c.SetStyle(opts.style())
	return c, nil
}

// EncodeString is like Encode, with mode and level given by name.
// Invalid names are logged as warnings and replaced by byte mode and
// level M.  Mode "auto" or "" selects the densest mode for text.
func EncodeString(text, mode, level string, opts *Options) (*Code, error) {
	log := opts.logger()
	var m Mode
	switch strings.ToLower(mode) {
	case "", "auto":
		m = coding.DetectMode(text)
	default:
		var err error
		if m, err = coding.ParseMode(mode); err != nil {
			log.Warn("using default mode", zap.Error(err),
				zap.Stringer("mode", m))
		}
	}
	l := M
	if level != "" {
		var err error
		if l, err = coding.ParseLevel(level); err != nil {
			log.Warn("using default level", zap.Error(err),
				zap.Stringer("level", l))
		}
	}
	return Encode(text, m, l, opts)
}

// A Code is a square pixel grid.
// It can be rendered as an image, PNG, PBM, HTML or text.
type Code struct {
	Bitmap  []byte          // 1 is dark, 0 is light
	Size    int             // number of modules on a side
	Stride  int             // number of bytes per row
	Scale   int             // number of image pixels per module
	Border  int             // modules of padding on each side
	Palette *[2]color.Color // light and dark colours; nil is white, black
	Reverse bool            // swap light and dark

	Version coding.Version
	Level   Level
	Mode    Mode
	Mask    int
}

func newCode(sym *coding.Symbol) *Code {
	m := sym.Matrix
	siz := m.Size()
	stride := (siz + 7) / 8
	c := &Code{
		Bitmap:  make([]byte, stride*siz),
		Size:    siz,
		Stride:  stride,
		Scale:   1,
		Version: sym.Plan.Version,
		Level:   sym.Plan.Level,
		Mode:    sym.Plan.Mode,
		Mask:    sym.Mask,
	}
	for y := 0; y < siz; y++ {
		row := c.Bitmap[y*stride:]
		for x := 0; x < siz; x++ {
			if m.Dark(x, y) {
				row[x/8] |= 0x80 >> uint(x&7)
			}
		}
	}
	return c
}

// SetStyle sets the scale, border and palette of c from s.
func (c *Code) SetStyle(s Style) {
	c.Scale = s.Scale()
	c.Border = s.Border()
	c.Palette = &[2]color.Color{s.Background, s.Foreground}
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// dark reports whether the module at (x,y) is drawn in the dark
// colour, taking c.Reverse into account.
func (c *Code) dark(x, y int) bool {
	return c.Black(x, y) != c.Reverse
}

func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Stride >= (c.Size+7)/8 &&
		len(c.Bitmap) >= c.Stride*c.Size && c.Scale > 0 && c.Border >= 0
}

// pixels returns the side of the image in pixels.
func (c *Code) pixels() int {
	return (c.Size + 2*c.Border) * c.Scale
}

func (c *Code) palette() color.Palette {
	if c.Palette == nil {
		return color.Palette{color.Gray{0xff}, color.Gray{0x00}}
	}
	return color.Palette{c.Palette[0], c.Palette[1]}
}

// Data returns the modules of c, true for dark, indexed by row and
// column.  Border and Reverse are ignored.
func (c *Code) Data() [][]bool {
	d := make([][]bool, c.Size)
	for y := range d {
		d[y] = make([]bool, c.Size)
		for x := range d[y] {
			d[y][x] = c.Black(x, y)
		}
	}
	return d
}

// Image returns an Image displaying the code.
// The image implements image.PalettedImage.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.palette()}
}

// codeImage implements image.PalettedImage
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := c.pixels()
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if x >= 0 && y >= 0 {
		x, y = x/c.Scale-c.Border, y/c.Scale-c.Border
	}
	if c.dark(x, y) {
		return 1
	}
	return 0
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}
