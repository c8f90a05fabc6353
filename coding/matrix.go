// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"slices"
	"strconv"
	"strings"
	"sync"
)

// A Module is the state of one cell of a Matrix.
type Module uint8

const (
	Unset    Module = iota // not yet written
	Reserved               // held for a function pattern
	Light
	Dark
)

func (m Module) String() string {
	switch m {
	case Unset:
		return "unset"
	case Reserved:
		return "reserved"
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "module(" + strconv.Itoa(int(m)) + ")"
}

// A Matrix is a square grid of modules.
type Matrix struct {
	version Version
	size    int
	cells   []Module
}

// Version returns the version of m.
func (m *Matrix) Version() Version { return m.version }

// Size returns the number of modules on a side.
func (m *Matrix) Size() int { return m.size }

// At returns the module in column x, row y.
func (m *Matrix) At(x, y int) Module { return m.cells[y*m.size+x] }

// Dark reports whether the module in column x, row y is dark.
// Modules outside the matrix are light.
func (m *Matrix) Dark(x, y int) bool {
	return 0 <= x && x < m.size && 0 <= y && y < m.size &&
		m.cells[y*m.size+x] == Dark
}

// Count returns the number of modules in state v.
func (m *Matrix) Count(v Module) int {
	n := 0
	for _, c := range m.cells {
		if c == v {
			n++
		}
	}
	return n
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	c := *m
	c.cells = slices.Clone(m.cells)
	return &c
}

// Finished reports whether every module is light or dark.
func (m *Matrix) Finished() bool {
	return m.Count(Unset) == 0 && m.Count(Reserved) == 0
}

// String returns m as lines of text, one character per module:
// '#' for dark, '.' for light, '+' for reserved and '_' for unset.
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow((m.size + 1) * m.size)
	for i, c := range m.cells {
		b.WriteByte("_+.#"[c&3])
		if i%m.size == m.size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Pre-built matrices with the function patterns reserved, one per
// version.  A template is created the first time a version is used
// and only cloned afterwards.
var templates [MaxVersion + 1]struct {
	once sync.Once
	m    *Matrix
}

// NewMatrix returns an empty matrix for version v with the function
// pattern areas reserved.
func NewMatrix(v Version) (*Matrix, error) {
	if !v.isValid() {
		return nil, ErrVersion
	}
	t := &templates[v]
	t.once.Do(func() {
		siz := v.Size()
		t.m = &Matrix{v, siz, make([]Module, siz*siz)}
		t.m.drawPatterns(true, 0, 0)
	})
	return t.m.Clone(), nil
}

// set sets the module in column x, row y to dark or light, or to
// Reserved if reserve is true.
func (m *Matrix) set(x, y int, dark, reserve bool) {
	v := Light
	switch {
	case reserve:
		v = Reserved
	case dark:
		v = Dark
	}
	m.cells[y*m.size+x] = v
}

// drawPatterns draws the function patterns: timing tracks, finders
// with separators, alignment patterns, the dark module, the format
// information for level l and mask, and the version information.
// With reserve set, the same modules are marked Reserved instead.
func (m *Matrix) drawPatterns(reserve bool, l Level, mask int) {
	siz := m.size
	set := func(x, y int, dark bool) { m.set(x, y, dark, reserve) }

	// Timing
	for i := 0; i < siz; i++ {
		set(i, 6, i&1 == 0)
		set(6, i, i&1 == 0)
	}

	// Finders
	for _, o := range [3][2]int{{0, 0}, {siz - 7, 0}, {0, siz - 7}} {
		for dy, row := range finder {
			for dx := 0; dx < 7; dx++ {
				set(o[0]+dx, o[1]+dy, row>>(6-dx)&1 != 0)
			}
		}
	}

	// Separators
	for i := 0; i < 8; i++ {
		set(7, i, false)
		set(i, 7, false)
		set(siz-8, i, false)
		set(siz-8+i, 7, false)
		set(7, siz-8+i, false)
		set(i, siz-8, false)
	}

	// Alignment
	pos := alignPos[m.version]
	for _, cx := range pos {
		for _, cy := range pos {
			x, y := int(cx), int(cy)
			if x == 6 && (y == 6 || y == siz-7) || x == siz-7 && y == 6 {
				continue
			}
			for dy, row := range alignment {
				for dx := 0; dx < 5; dx++ {
					set(x-2+dx, y-2+dy, row>>(4-dx)&1 != 0)
				}
			}
		}
	}

	// Dark module
	set(8, siz-8, true)

	// Format, bit 0 is least significant.
	fb := ftab[l][mask]
	for i := 0; i < 15; i++ {
		dark := fb>>i&1 != 0
		switch {
		case i < 6:
			set(8, i, dark)
		case i < 8:
			set(8, i+1, dark)
		case i == 8:
			set(7, 8, dark)
		default:
			set(14-i, 8, dark)
		}
		if i < 8 {
			set(siz-1-i, 8, dark)
		} else {
			set(8, siz-15+i, dark)
		}
	}

	// Version
	if m.version >= 7 {
		vb := vtab[m.version]
		for i := 0; i < 18; i++ {
			dark := vb>>i&1 != 0
			a, b := siz-11+i%3, i/3
			set(a, b, dark)
			set(b, a, dark)
		}
	}
}
