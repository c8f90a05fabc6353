// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelectVersion(t *testing.T) {
	for _, tt := range []struct {
		n    int
		mode Mode
		l    Level
		v    Version
		cap  int
	}{
		{11, Byte, M, 1, 16},
		{0, Numeric, H, 1, 9},
		{41, Numeric, L, 1, 19},
		{42, Numeric, L, 2, 34},
		{17, Byte, L, 1, 19},
		{18, Byte, L, 2, 34},
		{2953, Byte, L, 40, 2956},
		{7089, Numeric, L, 40, 2956},
		{1817, Kanji, L, 40, 2956},
	} {
		p, err := SelectVersion(tt.n, tt.mode, tt.l)
		if err != nil {
			t.Errorf("SelectVersion(%d, %s, %s): %v", tt.n, tt.mode, tt.l, err)
			continue
		}
		if p.Version != tt.v || p.Capacity != tt.cap {
			t.Errorf("SelectVersion(%d, %s, %s) = %s/%d, want %s/%d",
				tt.n, tt.mode, tt.l, p.Version, p.Capacity, tt.v, tt.cap)
		}
		if p.Mode != tt.mode || p.Level != tt.l {
			t.Errorf("SelectVersion(%d, %s, %s): plan %+v", tt.n, tt.mode,
				tt.l, p)
		}
	}
}

func TestSelectVersionErrors(t *testing.T) {
	if _, err := SelectVersion(2954, Byte, L); err != ErrCapacityExceeded {
		t.Errorf("2954 bytes at L: error = %v, want ErrCapacityExceeded", err)
	}
	if _, err := SelectVersion(1, Mode(-1), L); !errors.As(err, new(ModeError)) {
		t.Errorf("mode -1: error = %v, want ModeError", err)
	}
	if _, err := SelectVersion(1, Byte, Level(4)); !errors.As(err, new(LevelError)) {
		t.Errorf("level 4: error = %v, want LevelError", err)
	}
}

// Capacity is the sum of the block sizes, and the versions selected
// grow with the length.
func TestCapacity(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for l := L; l <= H; l++ {
			lay := layouts[v][l]
			if got := lay.G1Count*lay.G1Size + lay.G2Count*lay.G2Size; got != lay.DataBytes() {
				t.Errorf("%d-%s: DataBytes() = %d, want %d", v, l,
					lay.DataBytes(), got)
			}
			for m := Numeric; m <= Kanji; m++ {
				p, err := SelectVersion(MaxChars(v, m, l), m, l)
				if err != nil {
					t.Fatal(err)
				}
				if p.Version > v || p.Capacity != p.Layout.DataBytes() {
					t.Errorf("%d-%s %s: plan %+v", v, l, m, p)
				}
			}
		}
	}
}

func assemble(t *testing.T, bits string, capacity int) []byte {
	t.Helper()
	var b Bits
	for _, c := range bits {
		b.Write(uint32(c-'0'), 1)
	}
	data, err := Assemble(&b, capacity)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestAssemble(t *testing.T) {
	for _, tt := range []struct {
		name     string
		bits     string
		capacity int
		want     []byte
	}{
		{"filler", "0001", 5, []byte{0x10, 0xec, 0x11, 0xec, 0x11}},
		{"aligned", "11111111", 3, []byte{0xff, 0x00, 0xec}},
		{"short terminator", strings.Repeat("1", 22), 3, []byte{0xff, 0xff, 0xfc}},
		{"full", strings.Repeat("1", 24), 3, []byte{0xff, 0xff, 0xff}},
		{"empty", "", 2, []byte{0x00, 0xec}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := assemble(t, tt.bits, tt.capacity)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Assemble mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAssembleOverflow(t *testing.T) {
	var b Bits
	b.Write(0, 17)
	_, err := Assemble(&b, 2)
	var ie *InternalError
	if !errors.As(err, &ie) || ie.Stage != "assemble" {
		t.Errorf("error = %v, want InternalError in assemble", err)
	}
}

// Filler codewords alternate 236, 17 after the data.
func TestFiller(t *testing.T) {
	p, err := SelectVersion(1, Numeric, L)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodeBits("5", p, ModeWidths)
	if err != nil {
		t.Fatal(err)
	}
	data, err := Assemble(b, p.Capacity)
	if err != nil {
		t.Fatal(err)
	}
	start := (b.Bits() + 4 + 7) / 8
	for i, c := range data[start:] {
		want := byte(236)
		if i%2 != 0 {
			want = 17
		}
		if c != want {
			t.Fatalf("data[%d] = %d, want %d", start+i, c, want)
		}
	}
}

// HELLO WORLD at 1-Q with ISO widths, as in the worked example by
// Thonky.com.
func TestAddECC(t *testing.T) {
	p, err := SelectVersion(11, Alphanumeric, Q)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodeBits("HELLO WORLD", p, ISOWidths)
	if err != nil {
		t.Fatal(err)
	}
	data, err := Assemble(b, p.Capacity)
	if err != nil {
		t.Fatal(err)
	}
	wantData := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236}
	if diff := cmp.Diff(wantData, data); diff != "" {
		t.Errorf("data codewords (-want +got):\n%s", diff)
	}
	blocks, err := AddECC(data, p.Layout, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []Block{{
		Data: wantData,
		ECC:  []byte{168, 72, 22, 82, 217, 54, 156, 0, 46, 15, 180, 122, 16},
	}}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("blocks (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(append(wantData, want[0].ECC...), Interleave(blocks)); diff != "" {
		t.Errorf("single block interleave (-want +got):\n%s", diff)
	}
}

func TestAddECCLayout(t *testing.T) {
	lay := BlockLayout{ECCPerBlock: 2, G1Count: 2, G1Size: 2, G2Count: 1, G2Size: 3}
	data := []byte{1, 2, 3, 4, 5, 6, 7}
	var msgs [][]byte
	rs := func(msg []byte, n int) []byte {
		msgs = append(msgs, msg)
		return make([]byte, n)
	}
	blocks, err := AddECC(data, lay, rs)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]byte{{1, 2}, {3, 4}, {5, 6, 7}}
	if diff := cmp.Diff(want, msgs); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
	if len(blocks) != 3 {
		t.Fatalf("%d blocks, want 3", len(blocks))
	}

	if _, err := AddECC(data[:6], lay, rs); !errors.As(err, new(*InternalError)) {
		t.Errorf("short data: error = %v, want InternalError", err)
	}
	bad := func(msg []byte, n int) []byte { return make([]byte, n-1) }
	if _, err := AddECC(data, lay, bad); !errors.As(err, new(*InternalError)) {
		t.Errorf("short check bytes: error = %v, want InternalError", err)
	}
}

func TestInterleave(t *testing.T) {
	blocks := []Block{
		{Data: []byte{1, 2}, ECC: []byte{10, 11}},
		{Data: []byte{3, 4}, ECC: []byte{12, 13}},
		{Data: []byte{5, 6, 7}, ECC: []byte{14, 15}},
	}
	want := []byte{1, 3, 5, 2, 4, 6, 7, 10, 12, 14, 11, 13, 15}
	if diff := cmp.Diff(want, Interleave(blocks)); diff != "" {
		t.Errorf("Interleave mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize(t *testing.T) {
	for _, tt := range []struct {
		v     Version
		extra int
	}{
		{1, 0}, {2, 7}, {14, 3}, {21, 4}, {35, 0},
	} {
		s := Serialize([]byte{0xff}, tt.v)
		if s.Len() != 8+tt.extra {
			t.Errorf("version %d: %d bits, want %d", tt.v, s.Len(),
				8+tt.extra)
		}
	}
}

func TestReedSolomon(t *testing.T) {
	// Appending the check bytes yields a codeword: its check bytes
	// are zero.
	msg := []byte("The quick brown fox")
	ecc := ReedSolomon(msg, 10)
	if got := ReedSolomon(append(msg, ecc...), 10); !cmp.Equal(got, make([]byte, 10)) {
		t.Errorf("check bytes of codeword = %v, want zeros", got)
	}
}
