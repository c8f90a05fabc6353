// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/unixdj/qrgen/coding"
	"github.com/unixdj/qrgen/internal/style"
)

// HTML returns the code as a CSS grid of one <div> per module.
func (c *Code) HTML() string {
	if !c.isValid() {
		return ""
	}
	pal := c.palette()
	bg, fg := hex(pal[0]), hex(pal[1])
	if c.Reverse {
		bg, fg = fg, bg
	}
	return htmlGrid(c.Size, c.Scale, c.Border, bg, func(x, y int) string {
		if c.Black(x, y) {
			return fg
		}
		return bg
	})
}

// DebugHTML returns m as a CSS grid like (*Code).HTML.  m need not be
// finished: reserved modules are drawn in s.Marker and unset ones in
// s.Unset.
func DebugHTML(m *coding.Matrix, s Style) string {
	col := [...]string{
		coding.Unset:    style.Hex(s.Unset),
		coding.Reserved: style.Hex(s.Marker),
		coding.Light:    style.Hex(s.Background),
		coding.Dark:     style.Hex(s.Foreground),
	}
	return htmlGrid(m.Size(), s.Scale(), s.Border(), col[coding.Light],
		func(x, y int) string { return col[m.At(x, y)] })
}

func htmlGrid(siz, pixel, border int, bg string, cell func(x, y int) string) string {
	var b strings.Builder
	side := pixel * (siz + 2*border)
	fmt.Fprintf(&b, `<div style="display:grid; box-sizing:border-box; `+
		`background:%s; grid-template-columns:repeat(%d,%dpx); `+
		`grid-template-rows:repeat(%d,%dpx); padding:%dpx; `+
		`width:%dpx; height:%dpx;">`,
		bg, siz, pixel, siz, pixel, pixel*border, side, side)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			fmt.Fprintf(&b, `<div style="background:%s"></div>`, cell(x, y))
		}
	}
	b.WriteString("</div>")
	return b.String()
}

func hex(c color.Color) string {
	return style.Hex(color.RGBAModel.Convert(c).(color.RGBA))
}
