// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"go.uber.org/zap"
)

// Options control Encode.  The zero value is ready to use.
type Options struct {
	Widths   Widths      // bit field widths
	Latin1   bool        // convert byte mode text from UTF-8 to Latin-1
	ECC      ECCFunc     // error correction; nil means ReedSolomon
	Parallel bool        // evaluate masks concurrently
	Logger   *zap.Logger // stage log; nil means the package logger
}

func (o *Options) logger() *zap.Logger {
	if o == nil || o.Logger == nil {
		return Logger()
	}
	return o.Logger
}

// A Symbol is a finished QR code.
type Symbol struct {
	Plan    Plan
	Mask    int
	Penalty int
	Matrix  *Matrix // every module light or dark
}

// Encode encodes req.  opts may be nil.
func Encode(req Request, opts *Options) (*Symbol, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	log := opts.logger()

	req, err := Normalize(req, &o)
	if err != nil {
		return nil, err
	}
	log.Debug("input normalized",
		zap.Stringer("mode", req.Mode),
		zap.Stringer("level", req.Level),
		zap.Int("length", len(req.Text)))

	p, err := SelectVersion(len(req.Text), req.Mode, req.Level)
	if err != nil {
		return nil, err
	}
	log.Debug("version selected",
		zap.Stringer("version", p.Version),
		zap.Int("capacity", p.Capacity),
		zap.Int("blocks", p.Layout.Blocks()),
		zap.Int("ecc", p.Layout.ECCPerBlock))

	b, err := EncodeBits(req.Text, p, o.Widths)
	if err != nil {
		return nil, err
	}
	log.Debug("bits encoded",
		zap.Stringer("widths", o.Widths),
		zap.Int("bits", b.Bits()))

	data, err := Assemble(b, p.Capacity)
	if err != nil {
		return nil, err
	}
	log.Debug("codewords assembled", zap.Int("codewords", len(data)))

	blocks, err := AddECC(data, p.Layout, o.ECC)
	if err != nil {
		return nil, err
	}
	cw := Interleave(blocks)
	s := Serialize(cw, p.Version)
	log.Debug("codewords interleaved",
		zap.Int("codewords", len(cw)),
		zap.Int("bits", s.Len()))

	m, err := NewMatrix(p.Version)
	if err != nil {
		return nil, err
	}
	if err := m.Place(&s); err != nil {
		return nil, err
	}
	log.Debug("data placed", zap.Int("size", m.Size()))

	best, all := SelectMask(m, p.Level, o.Parallel)
	if log.Core().Enabled(zap.DebugLevel) {
		pen := make([]int, len(all))
		for i, r := range all {
			pen[i] = r.Penalty
		}
		log.Debug("mask selected",
			zap.Int("mask", best.Mask),
			zap.Ints("penalties", pen))
	}
	if !best.Matrix.Finished() {
		return nil, internalf("finalize", "unfilled modules in mask %d",
			best.Mask)
	}
	return &Symbol{
		Plan:    p,
		Mask:    best.Mask,
		Penalty: best.Penalty,
		Matrix:  best.Matrix,
	}, nil
}
