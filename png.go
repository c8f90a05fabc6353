// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image/png"
	"io"
)

// maxPixels limits the side of PNG images.
const maxPixels = 32767 * 8

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// PNG returns a PNG image displaying the code, or nil if c is invalid
// or the image would be too large.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.  The image
// is a 1-bit paletted image with the colours of c.Palette.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	if c.pixels() > maxPixels {
		return ErrLargeImage
	}
	return pngEncoder.Encode(w, c.Image())
}
