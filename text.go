// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "strings"

// Half blocks indexed by top | bottom<<1.
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// String returns the code as UTF-8 text, two rows of modules per
// line, with dark modules drawn as blocks.  c.Scale is ignored.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	var b strings.Builder
	end := c.Size + c.Border
	for y := -c.Border; y < end; y += 2 {
		for x := -c.Border; x < end; x++ {
			i := 0
			if c.dark(x, y) {
				i |= 1
			}
			if y+1 < end && c.dark(x, y+1) {
				i |= 2
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ASCII returns the code as text, two characters per module, with
// dark modules drawn as '#'.  c.Scale is ignored.
func (c *Code) ASCII() string {
	if !c.isValid() {
		return ""
	}
	pix := c.Size + 2*c.Border
	b := make([]byte, 0, (pix*2+1)*pix)
	for y := -c.Border; y < c.Size+c.Border; y++ {
		for x := -c.Border; x < c.Size+c.Border; x++ {
			p := byte(' ')
			if c.dark(x, y) {
				p = '#'
			}
			b = append(b, p, p)
		}
		b = append(b, '\n')
	}
	return string(b)
}
