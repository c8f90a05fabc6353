// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	pix := c.pixels()
	ps := strconv.Itoa(pix)
	if _, err := b.WriteString("P4\n" + ps + " " + ps + "\n"); err != nil {
		return err
	}
	row := make([]byte, (pix+7)/8)
	for y := -c.Border; y < c.Size+c.Border; y++ {
		pbmRow(row, c, y)
		for i := 0; i < c.Scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow fills row with the pixels of module row y.  In PBM 1 is
// black.
func pbmRow(row []byte, c *Code, y int) {
	clear(row)
	i := 0
	for x := -c.Border; x < c.Size+c.Border; x++ {
		if !c.dark(x, y) {
			i += c.Scale
			continue
		}
		for end := i + c.Scale; i < end; i++ {
			row[i>>3] |= 0x80 >> uint(i&7)
		}
	}
}
