// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"rsc.io/qr/gf256"
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Plan describes the symbol chosen for a request.
type Plan struct {
	Version  Version
	Level    Level
	Mode     Mode
	Capacity int // data codewords
	Layout   BlockLayout
}

// Size returns the number of modules on a side of the symbol.
func (p Plan) Size() int { return p.Version.Size() }

// MaxChars returns the maximum number of characters encodable in mode
// m at version v and level l, or 0 if any of them is invalid.
func MaxChars(v Version, m Mode, l Level) int {
	if !v.isValid() || !m.isValid() || !l.isValid() {
		return 0
	}
	return int(maxChars[v][m][l])
}

// Layout returns the block layout of version v at level l.
func Layout(v Version, l Level) (BlockLayout, error) {
	if !v.isValid() {
		return BlockLayout{}, ErrVersion
	}
	if !l.isValid() {
		return BlockLayout{}, LevelError(l.String())
	}
	return layouts[v][l], nil
}

// SelectVersion returns the plan for the smallest version that holds
// n characters in mode m at level l.
func SelectVersion(n int, m Mode, l Level) (Plan, error) {
	if !m.isValid() {
		return Plan{}, ModeError(m.String())
	}
	if !l.isValid() {
		return Plan{}, LevelError(l.String())
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		if n <= int(maxChars[v][m][l]) {
			lay := layouts[v][l]
			return Plan{
				Version:  v,
				Level:    l,
				Mode:     m,
				Capacity: lay.DataBytes(),
				Layout:   lay,
			}, nil
		}
	}
	return Plan{}, ErrCapacityExceeded
}

// Assemble returns the data codewords of a symbol holding b in
// capacity codewords: b, a terminator of up to 4 zero bits, zero bits
// up to a byte boundary and alternating 236 and 17 filler codewords.
func Assemble(b *Bits, capacity int) ([]byte, error) {
	nbit := capacity * 8
	if b.Bits() > nbit {
		return nil, internalf("assemble",
			"%d bits exceed capacity of %d", b.Bits(), nbit)
	}
	data := make([]byte, min(capacity, (b.Bits()+4+7)>>3), capacity)
	copy(data, b.Bytes())
	for fill := byte(0xec); len(data) < capacity; fill ^= 0xec ^ 0x11 {
		data = append(data, fill)
	}
	return data, nil
}

// An ECCFunc returns n Reed-Solomon check bytes for msg.
type ECCFunc func(msg []byte, n int) []byte

// ReedSolomon is the default ECCFunc.  It computes check bytes over
// Field.
func ReedSolomon(msg []byte, n int) []byte {
	check := make([]byte, n)
	gf256.NewRSEncoder(Field, n).ECC(msg, check)
	return check
}

// A Block is a block of data codewords with its check codewords.
type Block struct {
	Data []byte
	ECC  []byte
}

// AddECC splits data into the blocks of layout and computes check
// bytes for each block with rs.
func AddECC(data []byte, layout BlockLayout, rs ECCFunc) ([]Block, error) {
	if len(data) != layout.DataBytes() {
		return nil, internalf("ecc",
			"%d data codewords for a layout of %d", len(data),
			layout.DataBytes())
	}
	if rs == nil {
		rs = ReedSolomon
	}
	blocks := make([]Block, 0, layout.Blocks())
	add := func(count, size int) error {
		for i := 0; i < count; i++ {
			msg := data[:size:size]
			data = data[size:]
			ecc := rs(msg, layout.ECCPerBlock)
			if len(ecc) != layout.ECCPerBlock {
				return internalf("ecc", "got %d check bytes, want %d",
					len(ecc), layout.ECCPerBlock)
			}
			blocks = append(blocks, Block{msg, ecc})
		}
		return nil
	}
	if err := add(layout.G1Count, layout.G1Size); err != nil {
		return nil, err
	}
	if err := add(layout.G2Count, layout.G2Size); err != nil {
		return nil, err
	}
	return blocks, nil
}

// Interleave returns the final codeword sequence: the i-th data
// codeword of every block that has one, for increasing i, followed by
// the check codewords in the same order.
func Interleave(blocks []Block) []byte {
	n := 0
	for _, b := range blocks {
		n += len(b.Data) + len(b.ECC)
	}
	dst := make([]byte, 0, n)
	dst = interleave(dst, blocks, func(b *Block) []byte { return b.Data })
	return interleave(dst, blocks, func(b *Block) []byte { return b.ECC })
}

func interleave(dst []byte, blocks []Block, f func(*Block) []byte) []byte {
	for i := 0; ; i++ {
		added := false
		for j := range blocks {
			if s := f(&blocks[j]); i < len(s) {
				dst = append(dst, s[i])
				added = true
			}
		}
		if !added {
			return dst
		}
	}
}

// Serialize returns the bits of codewords followed by the remainder
// bits of version v.
func Serialize(codewords []byte, v Version) BitStream {
	var extra int
	if v.isValid() {
		extra = int(remainderBits[v])
	}
	return NewBitStream(codewords, extra)
}
