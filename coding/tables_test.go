// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

// Symbol capacities from qrencode-3.1.1/qrspec.c: width, total
// codewords, remainder bits, check codewords by level, and the number
// of blocks in each group by level.
var qrspec = [MaxVersion + 1]struct {
	width, words, remainder int
	ec                      [4]int
	blocks                  [4][2]int
}{
	{},
	{21, 26, 0, [4]int{7, 10, 13, 17}, [4][2]int{{1, 0}, {1, 0}, {1, 0}, {1, 0}}},
	{25, 44, 7, [4]int{10, 16, 22, 28}, [4][2]int{{1, 0}, {1, 0}, {1, 0}, {1, 0}}},
	{29, 70, 7, [4]int{15, 26, 36, 44}, [4][2]int{{1, 0}, {1, 0}, {2, 0}, {2, 0}}},
	{33, 100, 7, [4]int{20, 36, 52, 64}, [4][2]int{{1, 0}, {2, 0}, {2, 0}, {4, 0}}},
	{37, 134, 7, [4]int{26, 48, 72, 88}, [4][2]int{{1, 0}, {2, 0}, {2, 2}, {2, 2}}},
	{41, 172, 7, [4]int{36, 64, 96, 112}, [4][2]int{{2, 0}, {4, 0}, {4, 0}, {4, 0}}},
	{45, 196, 0, [4]int{40, 72, 108, 130}, [4][2]int{{2, 0}, {4, 0}, {2, 4}, {4, 1}}},
	{49, 242, 0, [4]int{48, 88, 132, 156}, [4][2]int{{2, 0}, {2, 2}, {4, 2}, {4, 2}}},
	{53, 292, 0, [4]int{60, 110, 160, 192}, [4][2]int{{2, 0}, {3, 2}, {4, 4}, {4, 4}}},
	{57, 346, 0, [4]int{72, 130, 192, 224}, [4][2]int{{2, 2}, {4, 1}, {6, 2}, {6, 2}}},
	{61, 404, 0, [4]int{80, 150, 224, 264}, [4][2]int{{4, 0}, {1, 4}, {4, 4}, {3, 8}}},
	{65, 466, 0, [4]int{96, 176, 260, 308}, [4][2]int{{2, 2}, {6, 2}, {4, 6}, {7, 4}}},
	{69, 532, 0, [4]int{104, 198, 288, 352}, [4][2]int{{4, 0}, {8, 1}, {8, 4}, {12, 4}}},
	{73, 581, 3, [4]int{120, 216, 320, 384}, [4][2]int{{3, 1}, {4, 5}, {11, 5}, {11, 5}}},
	{77, 655, 3, [4]int{132, 240, 360, 432}, [4][2]int{{5, 1}, {5, 5}, {5, 7}, {11, 7}}},
	{81, 733, 3, [4]int{144, 280, 408, 480}, [4][2]int{{5, 1}, {7, 3}, {15, 2}, {3, 13}}},
	{85, 815, 3, [4]int{168, 308, 448, 532}, [4][2]int{{1, 5}, {10, 1}, {1, 15}, {2, 17}}},
	{89, 901, 3, [4]int{180, 338, 504, 588}, [4][2]int{{5, 1}, {9, 4}, {17, 1}, {2, 19}}},
	{93, 991, 3, [4]int{196, 364, 546, 650}, [4][2]int{{3, 4}, {3, 11}, {17, 4}, {9, 16}}},
	{97, 1085, 3, [4]int{224, 416, 600, 700}, [4][2]int{{3, 5}, {3, 13}, {15, 5}, {15, 10}}},
	{101, 1156, 4, [4]int{224, 442, 644, 750}, [4][2]int{{4, 4}, {17, 0}, {17, 6}, {19, 6}}},
	{105, 1258, 4, [4]int{252, 476, 690, 816}, [4][2]int{{2, 7}, {17, 0}, {7, 16}, {34, 0}}},
	{109, 1364, 4, [4]int{270, 504, 750, 900}, [4][2]int{{4, 5}, {4, 14}, {11, 14}, {16, 14}}},
	{113, 1474, 4, [4]int{300, 560, 810, 960}, [4][2]int{{6, 4}, {6, 14}, {11, 16}, {30, 2}}},
	{117, 1588, 4, [4]int{312, 588, 870, 1050}, [4][2]int{{8, 4}, {8, 13}, {7, 22}, {22, 13}}},
	{121, 1706, 4, [4]int{336, 644, 952, 1110}, [4][2]int{{10, 2}, {19, 4}, {28, 6}, {33, 4}}},
	{125, 1828, 4, [4]int{360, 700, 1020, 1200}, [4][2]int{{8, 4}, {22, 3}, {8, 26}, {12, 28}}},
	{129, 1921, 3, [4]int{390, 728, 1050, 1260}, [4][2]int{{3, 10}, {3, 23}, {4, 31}, {11, 31}}},
	{133, 2051, 3, [4]int{420, 784, 1140, 1350}, [4][2]int{{7, 7}, {21, 7}, {1, 37}, {19, 26}}},
	{137, 2185, 3, [4]int{450, 812, 1200, 1440}, [4][2]int{{5, 10}, {19, 10}, {15, 25}, {23, 25}}},
	{141, 2323, 3, [4]int{480, 868, 1290, 1530}, [4][2]int{{13, 3}, {2, 29}, {42, 1}, {23, 28}}},
	{145, 2465, 3, [4]int{510, 924, 1350, 1620}, [4][2]int{{17, 0}, {10, 23}, {10, 35}, {19, 35}}},
	{149, 2611, 3, [4]int{540, 980, 1440, 1710}, [4][2]int{{17, 1}, {14, 21}, {29, 19}, {11, 46}}},
	{153, 2761, 3, [4]int{570, 1036, 1530, 1800}, [4][2]int{{13, 6}, {14, 23}, {44, 7}, {59, 1}}},
	{157, 2876, 0, [4]int{570, 1064, 1590, 1890}, [4][2]int{{12, 7}, {12, 26}, {39, 14}, {22, 41}}},
	{161, 3034, 0, [4]int{600, 1120, 1680, 1980}, [4][2]int{{6, 14}, {6, 34}, {46, 10}, {2, 64}}},
	{165, 3196, 0, [4]int{630, 1204, 1770, 2100}, [4][2]int{{17, 4}, {29, 14}, {49, 10}, {24, 46}}},
	{169, 3362, 0, [4]int{660, 1260, 1860, 2220}, [4][2]int{{4, 18}, {13, 32}, {48, 14}, {42, 32}}},
	{173, 3532, 0, [4]int{720, 1316, 1950, 2310}, [4][2]int{{20, 4}, {40, 7}, {43, 22}, {10, 67}}},
	{177, 3706, 0, [4]int{750, 1372, 2040, 2430}, [4][2]int{{19, 6}, {18, 31}, {34, 34}, {20, 61}}},
}

func TestTables(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		q := &qrspec[v]
		if v.Size() != q.width || int(remainderBits[v]) != q.remainder {
			t.Errorf("version %d: size %d, remainder %d; want %d, %d",
				v, v.Size(), remainderBits[v], q.width, q.remainder)
		}
		for l := L; l <= H; l++ {
			lay := layouts[v][l]
			if n := lay.Blocks() * lay.ECCPerBlock; n != q.ec[l] {
				t.Errorf("%d-%s: %d check codewords, want %d", v, l, n, q.ec[l])
			}
			if n := lay.DataBytes() + q.ec[l]; n != q.words {
				t.Errorf("%d-%s: %d codewords, want %d", v, l, n, q.words)
			}
			if lay.G1Count != q.blocks[l][0] || lay.G2Count != q.blocks[l][1] {
				t.Errorf("%d-%s: %d+%d blocks, want %v", v, l,
					lay.G1Count, lay.G2Count, q.blocks[l])
			}
			if lay.G2Count != 0 && lay.G2Size != lay.G1Size+1 {
				t.Errorf("%d-%s: group sizes %d, %d", v, l,
					lay.G1Size, lay.G2Size)
			}
			for m := Numeric; m <= Kanji; m++ {
				if v > 1 && maxChars[v][m][l] <= maxChars[v-1][m][l] {
					t.Errorf("%d-%s %s: capacity does not grow", v, l, m)
				}
			}
		}
		if v >= 2 {
			pos := alignPos[v]
			if pos[0] != 6 || int(pos[len(pos)-1]) != v.Size()-7 {
				t.Errorf("version %d: alignment positions %v", v, pos)
			}
		} else if len(alignPos[v]) != 0 {
			t.Errorf("version 1: alignment positions %v", alignPos[v])
		}
	}
}
