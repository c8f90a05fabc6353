// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Static tables.  Indexed by version; index 0 is unused.

// Maximum character count by version, mode and level.
var maxChars = [MaxVersion + 1][4][4]uint16{
	{},
	{{41, 34, 27, 17}, {25, 20, 16, 10}, {17, 14, 11, 7}, {10, 8, 7, 4}},                                    // 1
	{{77, 63, 48, 34}, {47, 38, 29, 20}, {32, 26, 20, 14}, {20, 16, 12, 8}},                                 // 2
	{{127, 101, 77, 58}, {77, 61, 47, 35}, {53, 42, 32, 24}, {32, 26, 20, 15}},                              // 3
	{{187, 149, 111, 82}, {114, 90, 67, 50}, {78, 62, 46, 34}, {48, 38, 28, 21}},                            // 4
	{{255, 202, 144, 106}, {154, 122, 87, 64}, {106, 84, 60, 44}, {65, 52, 37, 27}},                         // 5
	{{322, 255, 178, 139}, {195, 154, 108, 84}, {134, 106, 74, 58}, {82, 65, 45, 36}},                       // 6
	{{370, 293, 207, 154}, {224, 178, 125, 93}, {154, 122, 86, 64}, {95, 75, 53, 39}},                       // 7
	{{461, 365, 259, 202}, {279, 221, 157, 122}, {192, 152, 108, 84}, {118, 93, 66, 52}},                    // 8
	{{552, 432, 312, 235}, {335, 262, 189, 143}, {230, 180, 130, 98}, {141, 111, 80, 60}},                   // 9
	{{652, 513, 364, 288}, {395, 311, 221, 174}, {271, 213, 151, 119}, {167, 131, 93, 74}},                  // 10
	{{772, 604, 427, 331}, {468, 366, 259, 200}, {321, 251, 177, 137}, {198, 155, 109, 85}},                 // 11
	{{883, 691, 489, 374}, {535, 419, 296, 227}, {367, 287, 203, 155}, {226, 177, 125, 96}},                 // 12
	{{1022, 796, 580, 427}, {619, 483, 352, 259}, {425, 331, 241, 177}, {262, 204, 149, 109}},               // 13
	{{1101, 871, 621, 468}, {667, 528, 376, 283}, {458, 362, 258, 194}, {282, 223, 159, 120}},               // 14
	{{1250, 991, 703, 530}, {758, 600, 426, 321}, {520, 412, 292, 220}, {320, 254, 180, 136}},               // 15
	{{1408, 1082, 775, 602}, {854, 656, 470, 365}, {586, 450, 322, 250}, {361, 277, 198, 154}},              // 16
	{{1548, 1212, 876, 674}, {938, 734, 531, 408}, {644, 504, 364, 280}, {397, 310, 224, 173}},              // 17
	{{1725, 1346, 948, 746}, {1046, 816, 574, 452}, {718, 560, 394, 310}, {442, 345, 243, 191}},             // 18
	{{1903, 1500, 1063, 813}, {1153, 909, 644, 493}, {792, 624, 442, 338}, {488, 384, 272, 208}},            // 19
	{{2061, 1600, 1159, 919}, {1249, 970, 702, 557}, {858, 666, 482, 382}, {528, 410, 297, 235}},            // 20
	{{2232, 1708, 1224, 969}, {1352, 1035, 742, 587}, {929, 711, 509, 403}, {572, 438, 314, 248}},           // 21
	{{2409, 1872, 1358, 1056}, {1460, 1134, 823, 640}, {1003, 779, 565, 439}, {618, 480, 348, 270}},         // 22
	{{2620, 2059, 1468, 1108}, {1588, 1248, 890, 672}, {1091, 857, 611, 461}, {672, 528, 376, 284}},         // 23
	{{2812, 2188, 1588, 1228}, {1704, 1326, 963, 744}, {1171, 911, 661, 511}, {721, 561, 407, 315}},         // 24
	{{3057, 2395, 1718, 1286}, {1853, 1451, 1041, 779}, {1273, 997, 715, 535}, {784, 614, 440, 330}},        // 25
	{{3283, 2544, 1804, 1425}, {1990, 1542, 1094, 864}, {1367, 1059, 751, 593}, {842, 652, 462, 365}},       // 26
	{{3517, 2701, 1933, 1501}, {2132, 1637, 1172, 910}, {1465, 1125, 805, 625}, {902, 692, 496, 385}},       // 27
	{{3669, 2857, 2085, 1581}, {2223, 1732, 1263, 958}, {1528, 1190, 868, 658}, {940, 732, 534, 405}},       // 28
	{{3909, 3035, 2181, 1677}, {2369, 1839, 1322, 1016}, {1628, 1264, 908, 698}, {1002, 778, 559, 430}},     // 29
	{{4158, 3289, 2358, 1782}, {2520, 1994, 1429, 1080}, {1732, 1370, 982, 742}, {1066, 843, 604, 457}},     // 30
	{{4417, 3486, 2473, 1897}, {2677, 2113, 1499, 1150}, {1840, 1452, 1030, 790}, {1132, 894, 634, 486}},    // 31
	{{4686, 3693, 2670, 2022}, {2840, 2238, 1618, 1226}, {1952, 1538, 1112, 842}, {1201, 947, 684, 518}},    // 32
	{{4965, 3909, 2805, 2157}, {3009, 2369, 1700, 1307}, {2068, 1628, 1168, 898}, {1273, 1002, 719, 553}},   // 33
	{{5253, 4134, 2949, 2301}, {3183, 2506, 1787, 1394}, {2188, 1722, 1228, 958}, {1347, 1060, 756, 590}},   // 34
	{{5529, 4343, 3081, 2361}, {3351, 2632, 1867, 1431}, {2303, 1809, 1283, 983}, {1417, 1113, 790, 605}},   // 35
	{{5836, 4588, 3244, 2524}, {3537, 2780, 1966, 1530}, {2431, 1911, 1351, 1051}, {1496, 1176, 832, 647}},  // 36
	{{6153, 4775, 3417, 2625}, {3729, 2894, 2071, 1591}, {2563, 1989, 1423, 1093}, {1577, 1224, 876, 673}},  // 37
	{{6479, 5039, 3599, 2735}, {3927, 3054, 2181, 1658}, {2699, 2099, 1499, 1139}, {1661, 1292, 923, 701}},  // 38
	{{6743, 5313, 3791, 2927}, {4087, 3220, 2298, 1774}, {2809, 2213, 1579, 1219}, {1729, 1362, 972, 750}},  // 39
	{{7089, 5596, 3993, 3057}, {4296, 3391, 2420, 1852}, {2953, 2331, 1663, 1273}, {1817, 1435, 1024, 784}}, // 40
}

// A BlockLayout describes the error correction block structure of a
// version and level: ECCPerBlock check bytes for each of G1Count blocks
// of G1Size data bytes followed by G2Count blocks of G2Size data bytes.
type BlockLayout struct {
	ECCPerBlock     int
	G1Count, G1Size int
	G2Count, G2Size int
}

// Blocks returns the total number of blocks.
func (b BlockLayout) Blocks() int { return b.G1Count + b.G2Count }

// DataBytes returns the number of data codewords.
func (b BlockLayout) DataBytes() int {
	return b.G1Count*b.G1Size + b.G2Count*b.G2Size
}

// Block layouts by version and level.
var layouts = [MaxVersion + 1][4]BlockLayout{
	{},
	{{7, 1, 19, 0, 0}, {10, 1, 16, 0, 0}, {13, 1, 13, 0, 0}, {17, 1, 9, 0, 0}},                // 1
	{{10, 1, 34, 0, 0}, {16, 1, 28, 0, 0}, {22, 1, 22, 0, 0}, {28, 1, 16, 0, 0}},              // 2
	{{15, 1, 55, 0, 0}, {26, 1, 44, 0, 0}, {18, 2, 17, 0, 0}, {22, 2, 13, 0, 0}},              // 3
	{{20, 1, 80, 0, 0}, {18, 2, 32, 0, 0}, {26, 2, 24, 0, 0}, {16, 4, 9, 0, 0}},               // 4
	{{26, 1, 108, 0, 0}, {24, 2, 43, 0, 0}, {18, 2, 15, 2, 16}, {22, 2, 11, 2, 12}},           // 5
	{{18, 2, 68, 0, 0}, {16, 4, 27, 0, 0}, {24, 4, 19, 0, 0}, {28, 4, 15, 0, 0}},              // 6
	{{20, 2, 78, 0, 0}, {18, 4, 31, 0, 0}, {18, 2, 14, 4, 15}, {26, 4, 13, 1, 14}},            // 7
	{{24, 2, 97, 0, 0}, {22, 2, 38, 2, 39}, {22, 4, 18, 2, 19}, {26, 4, 14, 2, 15}},           // 8
	{{30, 2, 116, 0, 0}, {22, 3, 36, 2, 37}, {20, 4, 16, 4, 17}, {24, 4, 12, 4, 13}},          // 9
	{{18, 2, 68, 2, 69}, {26, 4, 43, 1, 44}, {24, 6, 19, 2, 20}, {28, 6, 15, 2, 16}},          // 10
	{{20, 4, 81, 0, 0}, {30, 1, 50, 4, 51}, {28, 4, 22, 4, 23}, {24, 3, 12, 8, 13}},           // 11
	{{24, 2, 92, 2, 93}, {22, 6, 36, 2, 37}, {26, 4, 20, 6, 21}, {28, 7, 14, 4, 15}},          // 12
	{{26, 4, 107, 0, 0}, {22, 8, 37, 1, 38}, {24, 8, 20, 4, 21}, {22, 12, 11, 4, 12}},         // 13
	{{30, 3, 115, 1, 116}, {24, 4, 40, 5, 41}, {20, 11, 16, 5, 17}, {24, 11, 12, 5, 13}},      // 14
	{{22, 5, 87, 1, 88}, {24, 5, 41, 5, 42}, {30, 5, 24, 7, 25}, {24, 11, 12, 7, 13}},         // 15
	{{24, 5, 98, 1, 99}, {28, 7, 45, 3, 46}, {24, 15, 19, 2, 20}, {30, 3, 15, 13, 16}},        // 16
	{{28, 1, 107, 5, 108}, {28, 10, 46, 1, 47}, {28, 1, 22, 15, 23}, {28, 2, 14, 17, 15}},     // 17
	{{30, 5, 120, 1, 121}, {26, 9, 43, 4, 44}, {28, 17, 22, 1, 23}, {28, 2, 14, 19, 15}},      // 18
	{{28, 3, 113, 4, 114}, {26, 3, 44, 11, 45}, {26, 17, 21, 4, 22}, {26, 9, 13, 16, 14}},     // 19
	{{28, 3, 107, 5, 108}, {26, 3, 41, 13, 42}, {30, 15, 24, 5, 25}, {28, 15, 15, 10, 16}},    // 20
	{{28, 4, 116, 4, 117}, {26, 17, 42, 0, 0}, {28, 17, 22, 6, 23}, {30, 19, 16, 6, 17}},      // 21
	{{28, 2, 111, 7, 112}, {28, 17, 46, 0, 0}, {30, 7, 24, 16, 25}, {24, 34, 13, 0, 0}},       // 22
	{{30, 4, 121, 5, 122}, {28, 4, 47, 14, 48}, {30, 11, 24, 14, 25}, {30, 16, 15, 14, 16}},   // 23
	{{30, 6, 117, 4, 118}, {28, 6, 45, 14, 46}, {30, 11, 24, 16, 25}, {30, 30, 16, 2, 17}},    // 24
	{{26, 8, 106, 4, 107}, {28, 8, 47, 13, 48}, {30, 7, 24, 22, 25}, {30, 22, 15, 13, 16}},    // 25
	{{28, 10, 114, 2, 115}, {28, 19, 46, 4, 47}, {28, 28, 22, 6, 23}, {30, 33, 16, 4, 17}},    // 26
	{{30, 8, 122, 4, 123}, {28, 22, 45, 3, 46}, {30, 8, 23, 26, 24}, {30, 12, 15, 28, 16}},    // 27
	{{30, 3, 117, 10, 118}, {28, 3, 45, 23, 46}, {30, 4, 24, 31, 25}, {30, 11, 15, 31, 16}},   // 28
	{{30, 7, 116, 7, 117}, {28, 21, 45, 7, 46}, {30, 1, 23, 37, 24}, {30, 19, 15, 26, 16}},    // 29
	{{30, 5, 115, 10, 116}, {28, 19, 47, 10, 48}, {30, 15, 24, 25, 25}, {30, 23, 15, 25, 16}}, // 30
	{{30, 13, 115, 3, 116}, {28, 2, 46, 29, 47}, {30, 42, 24, 1, 25}, {30, 23, 15, 28, 16}},   // 31
	{{30, 17, 115, 0, 0}, {28, 10, 46, 23, 47}, {30, 10, 24, 35, 25}, {30, 19, 15, 35, 16}},   // 32
	{{30, 17, 115, 1, 116}, {28, 14, 46, 21, 47}, {30, 29, 24, 19, 25}, {30, 11, 15, 46, 16}}, // 33
	{{30, 13, 115, 6, 116}, {28, 14, 46, 23, 47}, {30, 44, 24, 7, 25}, {30, 59, 16, 1, 17}},   // 34
	{{30, 12, 121, 7, 122}, {28, 12, 47, 26, 48}, {30, 39, 24, 14, 25}, {30, 22, 15, 41, 16}}, // 35
	{{30, 6, 121, 14, 122}, {28, 6, 47, 34, 48}, {30, 46, 24, 10, 25}, {30, 2, 15, 64, 16}},   // 36
	{{30, 17, 122, 4, 123}, {28, 29, 46, 14, 47}, {30, 49, 24, 10, 25}, {30, 24, 15, 46, 16}}, // 37
	{{30, 4, 122, 18, 123}, {28, 13, 46, 32, 47}, {30, 48, 24, 14, 25}, {30, 42, 15, 32, 16}}, // 38
	{{30, 20, 117, 4, 118}, {28, 40, 47, 7, 48}, {30, 43, 24, 22, 25}, {30, 10, 15, 67, 16}},  // 39
	{{30, 19, 118, 6, 119}, {28, 18, 47, 31, 48}, {30, 34, 24, 34, 25}, {30, 20, 15, 61, 16}}, // 40
}

// Remainder bits appended to the bit stream by version.
var remainderBits = [MaxVersion + 1]uint8{
	0,
	0, 7, 7, 7, 7, 7, 0, 0, 0, 0, // 1-10
	0, 0, 0, 3, 3, 3, 3, 3, 3, 3, // 11-20
	4, 4, 4, 4, 4, 4, 4, 3, 3, 3, // 21-30
	3, 3, 3, 3, 0, 0, 0, 0, 0, 0, // 31-40
}

// Alignment pattern centre coordinates by version.
var alignPos = [MaxVersion + 1][]uint8{
	{},
	{}, {6, 18}, {6, 22}, {6, 26}, {6, 30},                                               // 1-5
	{6, 34}, {6, 22, 38}, {6, 24, 42}, {6, 26, 46}, {6, 28, 50},                          // 6-10
	{6, 30, 54}, {6, 32, 58}, {6, 34, 62}, {6, 26, 46, 66}, {6, 26, 48, 70},              // 11-15
	{6, 26, 50, 74}, {6, 30, 54, 78}, {6, 30, 56, 82}, {6, 30, 58, 86}, {6, 34, 62, 90},  // 16-20
	{6, 28, 50, 72, 94}, {6, 26, 50, 74, 98}, {6, 30, 54, 78, 102},                       // 21-23
	{6, 28, 54, 80, 106}, {6, 32, 58, 84, 110}, {6, 30, 58, 86, 114},                     // 24-26
	{6, 34, 62, 90, 118}, {6, 26, 50, 74, 98, 122}, {6, 30, 54, 78, 102, 126},            // 27-29
	{6, 26, 52, 78, 104, 130}, {6, 30, 56, 82, 108, 134}, {6, 34, 60, 86, 112, 138},      // 30-32
	{6, 30, 58, 86, 114, 142}, {6, 34, 62, 90, 118, 146}, {6, 30, 54, 78, 102, 126, 150}, // 33-35
	{6, 24, 50, 76, 102, 128, 154}, {6, 28, 54, 80, 106, 132, 158},                       // 36-37
	{6, 32, 58, 84, 110, 136, 162}, {6, 26, 54, 82, 110, 138, 166},                       // 38-39
	{6, 30, 58, 86, 114, 142, 170},                                                       // 40
}

// QR Code format bits by level and mask, BCH coded and masked with
// 0x5412.  Bit 14 is sent first.
var ftab = [4][8]uint16{
	L: {0x77c4, 0x72f3, 0x7daa, 0x789d, 0x662f, 0x6318, 0x6c41, 0x6976},
	M: {0x5412, 0x5125, 0x5e7c, 0x5b4b, 0x45f9, 0x40ce, 0x4f97, 0x4aa0},
	Q: {0x355f, 0x3068, 0x3f31, 0x3a06, 0x24b4, 0x2183, 0x2eda, 0x2bed},
	H: {0x1689, 0x13be, 0x1ce7, 0x19d0, 0x0762, 0x0255, 0x0d0c, 0x083b},
}

// Version information bits, BCH coded, for versions 7 and up.
var vtab = [MaxVersion + 1]uint32{
	7:  0x07c94, 0x085bc, 0x09a99, 0x0a4d3, 0x0bbf6, 0x0c762, 0x0d847,
	14: 0x0e60d, 0x0f928, 0x10b78, 0x1145d, 0x12a17, 0x13532, 0x149a6,
	21: 0x15683, 0x168c9, 0x177ec, 0x18ec4, 0x191e1, 0x1afab, 0x1b08e,
	28: 0x1cc1a, 0x1d33f, 0x1ed75, 0x1f250, 0x209d5, 0x216f0, 0x228ba,
	35: 0x2379f, 0x24b0b, 0x2542e, 0x26a64, 0x27541, 0x28c69,
}

// Finder pattern rows, MSB first.
var finder = [7]uint8{0x7f, 0x41, 0x5d, 0x5d, 0x5d, 0x41, 0x7f}

// Alignment pattern rows, MSB first.
var alignment = [5]uint8{0x1f, 0x11, 0x15, 0x11, 0x1f}
