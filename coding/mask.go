// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// NumMasks is the number of data mask patterns.
const NumMasks = 8

// maskBit reports whether mask inverts the module in column x, row y.
func maskBit(mask, x, y int) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (y/2+x/3)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	}
	return false
}

// ApplyMask returns a copy of base with the data modules inverted
// where mask says so and the function patterns drawn with the format
// information for level l and mask.  base is not modified.
func ApplyMask(base *Matrix, l Level, mask int) *Matrix {
	m := base.Clone()
	siz := m.size
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			c := &m.cells[y*siz+x]
			if (*c == Light || *c == Dark) && maskBit(mask, x, y) {
				*c ^= Light ^ Dark
			}
		}
	}
	m.drawPatterns(false, l, mask)
	return m
}

// Penalty returns the penalty score of m, the sum of:
//
//   - for each run of n >= 5 same-colour modules in a row or column,
//     n-2;
//   - for each 2x2 box of same-colour modules, possibly overlapping, 3;
//   - for each occurrence of 10111010000 or 00001011101 in a row or
//     column, 40;
//   - for a proportion of p% dark modules,
//     10 * min(|floor((p-50)/5)|, |ceil((p-50)/5)|).
func Penalty(m *Matrix) int {
	const (
		MinRun    = 5     // minimum run length
		RunPDelta = -2    // add to run length
		BoxPP     = 3     // points per box
		FindPP    = 40    // points per pattern
		BalPP     = 10    // points per 5% off balance
		Pat1      = 0x5d0 // 10111010000
		Pat2      = 0x05d // 00001011101
		PatMask   = 0x7ff
	)
	siz := m.size
	p := 0
	dark := 0
	for dir := 0; dir < 2; dir++ {
		for i := 0; i < siz; i++ {
			run := 0
			var prev bool
			var pat uint16
			for j := 0; j < siz; j++ {
				x, y := j, i
				if dir != 0 {
					x, y = i, j
				}
				d := m.cells[y*siz+x] == Dark
				if dir == 0 && d {
					dark++
				}
				if j > 0 && d == prev {
					run++
				} else {
					if run >= MinRun {
						p += run + RunPDelta
					}
					run = 1
				}
				prev = d
				pat <<= 1
				if d {
					pat |= 1
				}
				pat &= PatMask
				if j >= 10 && (pat == Pat1 || pat == Pat2) {
					p += FindPP
				}
			}
			if run >= MinRun {
				p += run + RunPDelta
			}
		}
	}

	for y := 0; y < siz-1; y++ {
		for x := 0; x < siz-1; x++ {
			c := m.cells[y*siz+x]
			if c == m.cells[y*siz+x+1] && c == m.cells[(y+1)*siz+x] &&
				c == m.cells[(y+1)*siz+x+1] {
				p += BoxPP
			}
		}
	}

	pct := float64(dark) * 100 / float64(siz*siz)
	k := (pct - 50) / 5
	p += BalPP * int(min(math.Abs(math.Floor(k)), math.Abs(math.Ceil(k))))
	return p
}

// A MaskResult is a candidate symbol with one mask applied.
type MaskResult struct {
	Mask    int
	Penalty int
	Matrix  *Matrix
}

// SelectMask applies each mask to base and returns the result with
// the lowest penalty, along with all candidates in mask order.  Ties
// go to the lowest mask number.  If parallel is set, the candidates
// are evaluated concurrently.
func SelectMask(base *Matrix, l Level, parallel bool) (MaskResult, []MaskResult) {
	res := make([]MaskResult, NumMasks)
	trial := func(mask int) {
		m := ApplyMask(base, l, mask)
		res[mask] = MaskResult{mask, Penalty(m), m}
	}
	if parallel {
		var g errgroup.Group
		for mask := range res {
			g.Go(func() error {
				trial(mask)
				return nil
			})
		}
		g.Wait()
	} else {
		for mask := range res {
			trial(mask)
		}
	}
	return BestMask(res), res
}

// BestMask returns the candidate with the lowest penalty, and among
// those the lowest mask number.  The order of cands does not matter.
func BestMask(cands []MaskResult) MaskResult {
	var best MaskResult
	for i, c := range cands {
		if i == 0 || c.Penalty < best.Penalty ||
			c.Penalty == best.Penalty && c.Mask < best.Mask {
			best = c
		}
	}
	return best
}
