// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// A Trace is an ordered list of human readable lines describing the
// stages of encoding, one line per log entry, formatted as
// "message key=value ...".
//
// Trace implements zapcore.Core and accepts entries at every level.
// The zero value is ready to use.
type Trace struct {
	mu    sync.Mutex
	lines []string
}

// Lines returns a copy of the lines collected so far.
func (t *Trace) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.lines)
}

// String returns the lines collected so far, each terminated by a
// newline.
func (t *Trace) String() string {
	var b strings.Builder
	for _, l := range t.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

func (t *Trace) add(ent zapcore.Entry, ctx, fields []zapcore.Field) {
	var b strings.Builder
	b.WriteString(ent.Message)
	for _, f := range slices.Concat(ctx, fields) {
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		// Namespaces and inline objects add several keys.
		for _, k := range slices.Sorted(maps.Keys(enc.Fields)) {
			fmt.Fprintf(&b, " %s=%v", k, enc.Fields[k])
		}
	}
	t.mu.Lock()
	t.lines = append(t.lines, b.String())
	t.mu.Unlock()
}

func (t *Trace) Enabled(zapcore.Level) bool { return true }

func (t *Trace) With(fields []zapcore.Field) zapcore.Core {
	return &traceCore{t, slices.Clone(fields)}
}

func (t *Trace) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(ent, t)
}

func (t *Trace) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	t.add(ent, nil, fields)
	return nil
}

func (t *Trace) Sync() error { return nil }

// traceCore is a Trace with context fields added by With.
type traceCore struct {
	t   *Trace
	ctx []zapcore.Field
}

func (c *traceCore) Enabled(zapcore.Level) bool { return true }

func (c *traceCore) With(fields []zapcore.Field) zapcore.Core {
	return &traceCore{c.t, slices.Concat(c.ctx, fields)}
}

func (c *traceCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(ent, c)
}

func (c *traceCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	c.t.add(ent, c.ctx, fields)
	return nil
}

func (c *traceCore) Sync() error { return nil }
