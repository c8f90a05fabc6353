// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"math/bits"
	"strings"
)

// Bits is an append-only buffer of bits, most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with room for n bytes.
func NewBits(n int) *Bits {
	return &Bits{b: make([]byte, 0, n)}
}

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the contents of b.  The last byte is zero-padded if
// b does not end on a byte boundary.
func (b *Bits) Bytes() []byte {
	return b.b
}

// Bit returns bit i of b as 0 or 1.
func (b *Bits) Bit(i int) byte {
	return b.b[i>>3] >> (7 &^ i) & 1
}

// Write appends the low nbit bits of v, 0 <= nbit <= 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteField appends v in a field of at least width bits.  If v needs
// more bits than width, it is written at its natural length.
// It returns the number of bits written.
func (b *Bits) WriteField(v uint32, width int) int {
	n := max(width, bits.Len32(v))
	b.Write(v, n)
	return n
}

// String returns the bits of b as a string of '0' and '1'.
func (b *Bits) String() string {
	var s strings.Builder
	s.Grow(b.nbit)
	for i := 0; i < b.nbit; i++ {
		s.WriteByte('0' + b.Bit(i))
	}
	return s.String()
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	n   int // total number of bits
	pos int
}

// NewBitStream returns a BitStream reading the bytes of b followed by
// extra zero bits.
func NewBitStream(b []byte, extra int) BitStream {
	return BitStream{b: b, n: len(b)*8 + extra}
}

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Len returns the total number of bits in s.
func (s *BitStream) Len() int { return s.n }

// Remaining returns the number of bits not yet read.
func (s *BitStream) Remaining() int { return s.n - s.pos }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
	}
	if s.pos < s.n {
		s.pos++
	}
	return b
}
