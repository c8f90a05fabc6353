// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the package logger.  It discards everything unless
// replaced with SetLogger.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger sets the package logger.  A nil l restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
