// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements the QR encoding pipeline: input
// normalization, version selection, bit and codeword encoding, error
// correction, module placement and masking.
//
// Every stage is a function taking the previous stage's result and
// returning a new value; Encode runs them all in order.
package coding // import "github.com/unixdj/qrgen/coding"

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrCapacityExceeded is returned when the text does not fit in
	// the largest version at the requested level.
	ErrCapacityExceeded = errors.New("qr: text too long to encode")
	// ErrUnsupportedMode is returned for kanji mode.
	ErrUnsupportedMode = errors.New("qr: kanji mode not supported")
	ErrVersion         = errors.New("qr: invalid version")
)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Size returns the number of modules on a side of a version v code.
func (v Version) Size() int { return int(v)*4 + 17 }

func (v Version) isValid() bool { return MinVersion <= v && v <= MaxVersion }

// sizeClass returns 0 for versions 1 to 9, 1 for 10 to 26
// and 2 for 27 to 40.
func (v Version) sizeClass() int {
	switch {
	case v <= 9:
		return 0
	case v <= 26:
		return 1
	}
	return 2
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% recoverable
	M              // 15% recoverable
	Q              // 25% recoverable
	H              // 30% recoverable
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

func (l Level) isValid() bool { return L <= l && l <= H }

// ParseLevel returns the level named by s, one of L, M, Q or H in
// either case.  For any other string it returns M and a LevelError.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if i := strings.IndexByte("LMQHlmqh", s[0]); i >= 0 {
			return Level(i & 3), nil
		}
	}
	return M, LevelError(s)
}

// A Mode is a data encoding mode.
type Mode int

// Encoding modes, ordered from densest to least dense.
const (
	Numeric      Mode = iota // digits 0-9
	Alphanumeric             // digits, A-Z and SPACE $%*+-./:
	Byte                     // arbitrary bytes
	Kanji                    // Shift JIS double-byte characters
)

var modeNames = [...]string{"numeric", "alphanumeric", "byte", "kanji"}

// modeAliases maps accepted mode names to modes.
var modeAliases = map[string]Mode{
	"num":          Numeric,
	"numeric":      Numeric,
	"alpha":        Alphanumeric,
	"alphanumeric": Alphanumeric,
	"byte":         Byte,
	"kanji":        Kanji,
}

func (m Mode) String() string {
	if m.isValid() {
		return modeNames[m]
	}
	return strconv.Itoa(int(m))
}

func (m Mode) isValid() bool { return Numeric <= m && m <= Kanji }

// indicator returns the 4-bit mode indicator.
func (m Mode) indicator() uint32 { return 1 << m }

// ParseMode returns the mode named by s: num, alpha, byte or kanji,
// or the long names returned by Mode.String.  For any other string it
// returns Byte and a ModeError.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(s)]; ok {
		return m, nil
	}
	return Byte, ModeError(s)
}

// ModeError represents an unknown mode name or number.
type ModeError string

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode %q", string(e))
}

// LevelError represents an unknown error correction level.
type LevelError string

func (e LevelError) Error() string {
	return fmt.Sprintf("qr: invalid level %q", string(e))
}

// SegmentError represents text that cannot be encoded in a mode.
type SegmentError struct {
	Text string
	Mode Mode
}

func (e SegmentError) Error() string {
	return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
}

// An InternalError reports a broken invariant inside the pipeline.
// It means a bug or a corrupt table, never bad input.
type InternalError struct {
	Stage string // pipeline stage
	Msg   string
}

func (e *InternalError) Error() string {
	return "qr: internal error in " + e.Stage + ": " + e.Msg
}

func internalf(stage, format string, args ...any) error {
	return &InternalError{stage, fmt.Sprintf(format, args...)}
}
