// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// A Request is a string to encode in a given mode at a given level.
type Request struct {
	Text  string
	Mode  Mode
	Level Level
}

// Widths selects the widths of the bit fields written by EncodeBits.
type Widths int

const (
	// ModeWidths uses character count fields whose width depends on
	// the mode only, and 10 bit alphanumeric pairs.
	ModeWidths Widths = iota
	// ISOWidths uses the ISO/IEC 18004 widths: character count
	// fields sized by mode and version, 11 bit alphanumeric pairs.
	ISOWidths
)

func (w Widths) String() string {
	if w == ISOWidths {
		return "iso"
	}
	return "mode"
}

// Character count field widths by mode and version size class.
var countBits = [Kanji + 1][3]uint8{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
	Kanji:        {8, 10, 12},
}

// countWidth returns the width of the character count field.
func (w Widths) countWidth(m Mode, v Version) int {
	if w == ISOWidths {
		return int(countBits[m][v.sizeClass()])
	}
	return int(countBits[m][0])
}

// pairWidth returns the width of an alphanumeric pair.
func (w Widths) pairWidth() int {
	if w == ISOWidths {
		return 11
	}
	return 10
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// alpha[r&0x3f] is the alphanumeric value of r.
var alpha = [64]byte{
	// 0x40
	0, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 0, 0, 0, 0, 0,
	// 0x20
	36, 0, 0, 0, 37, 38, 0, 0, 0, 0, 39, 40, 0, 41, 42, 43,
	// 0x30
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, 0, 0, 0, 0, 0,
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isAlpha(r rune) bool { return alphamask>>(uint32(r)-' ')&1 != 0 }

func notDigit(r rune) bool { return !isDigit(r) }
func notAlpha(r rune) bool { return !isAlpha(r) }

// keep returns text with the runes not satisfying f removed.
func keep(text string, f func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if f(r) {
			return r
		}
		return -1
	}, text)
}

// Normalize returns req with its text reduced to the alphabet of its
// mode.  Numeric mode keeps the digits.  Alphanumeric mode converts the
// text to uppercase and keeps the characters of the alphanumeric
// table.  Byte mode keeps the text as is, or converts it from UTF-8 to
// ISO 8859-1 if opts.Latin1 is set.  Kanji mode is not supported.
func Normalize(req Request, opts *Options) (Request, error) {
	if !req.Level.isValid() {
		return req, LevelError(req.Level.String())
	}
	in := req.Text
	switch req.Mode {
	case Numeric:
		req.Text = keep(in, isDigit)
	case Alphanumeric:
		req.Text = keep(strings.ToUpper(in), isAlpha)
	case Byte:
		if opts != nil && opts.Latin1 {
			s, err := charmap.ISO8859_1.NewEncoder().String(in)
			if err != nil {
				return req, SegmentError{in, Byte}
			}
			req.Text = s
		}
	case Kanji:
		return req, ErrUnsupportedMode
	default:
		return req, ModeError(req.Mode.String())
	}
	return req, nil
}

// DetectMode returns the densest mode able to encode all of text.
// Kanji is never chosen.
func DetectMode(text string) Mode {
	m := Numeric
	for _, r := range text {
		if m == Numeric && !isDigit(r) {
			m = Alphanumeric
		}
		if m == Alphanumeric && !isAlpha(r) {
			return Byte
		}
	}
	if text == "" {
		return Byte
	}
	return m
}

// EncodeBits returns the mode indicator, character count and payload
// of text, which must be normalized for p.Mode.
func EncodeBits(text string, p Plan, w Widths) (*Bits, error) {
	if p.Mode == Kanji {
		return nil, ErrUnsupportedMode
	}
	if !p.Mode.isValid() {
		return nil, ModeError(p.Mode.String())
	}
	if p.Mode == Numeric && strings.IndexFunc(text, notDigit) >= 0 ||
		p.Mode == Alphanumeric && strings.IndexFunc(text, notAlpha) >= 0 {
		return nil, SegmentError{text, p.Mode}
	}
	b := NewBits(p.Capacity)
	b.Write(p.Mode.indicator(), 4)
	b.WriteField(uint32(len(text)), w.countWidth(p.Mode, p.Version))
	switch p.Mode {
	case Numeric:
		for len(text) >= 3 {
			v := uint32(text[0]-'0')*100 + uint32(text[1]-'0')*10 +
				uint32(text[2]-'0')
			b.WriteField(v, 10)
			text = text[3:]
		}
		switch len(text) {
		case 2:
			b.WriteField(uint32(text[0]-'0')*10+uint32(text[1]-'0'), 7)
		case 1:
			b.WriteField(uint32(text[0]-'0'), 4)
		}
	case Alphanumeric:
		pw := w.pairWidth()
		for len(text) >= 2 {
			v := uint32(alpha[text[0]&0x3f])*45 + uint32(alpha[text[1]&0x3f])
			b.WriteField(v, pw)
			text = text[2:]
		}
		if len(text) == 1 {
			b.WriteField(uint32(alpha[text[0]&0x3f]), 6)
		}
	case Byte:
		for i := 0; i < len(text); i++ {
			b.Write(uint32(text[i]), 8)
		}
	}
	return b, nil
}
