// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Place writes the bits of s to the unset modules of m in zigzag scan
// order: two columns at a time, right to left, alternately upwards
// and downwards, starting at the bottom right corner.  Column 6 holds
// the vertical timing track and is skipped.
//
// Every bit of s must be placed and every unset module must be
// filled.
func (m *Matrix) Place(s *BitStream) error {
	siz := m.size
	x, y := siz-1, siz-1
	dy, dx := -1, -1 // up, left
	for s.Remaining() > 0 {
		for m.cells[y*siz+x] != Unset {
			x += dx
			if dx < 0 {
				dx = 1
			} else {
				y += dy
				dx = -1
			}
			if x == 6 {
				x--
			}
			if y < 0 || y == siz {
				dy = -dy
				dx = -1
				x -= 2
				y += dy
			}
			if x < 0 {
				return internalf("place",
					"ran out of modules with %d bits left",
					s.Remaining())
			}
		}
		v := Light
		if s.Next() != 0 {
			v = Dark
		}
		m.cells[y*siz+x] = v
	}
	if n := m.Count(Unset); n != 0 {
		return internalf("place", "%d modules left unset", n)
	}
	return nil
}
