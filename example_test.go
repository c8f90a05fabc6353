// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"fmt"
	"log"

	"github.com/unixdj/qrgen"
)

func ExampleEncodeString() {
	c, err := qr.EncodeString("HELLO WORLD", "auto", "q", nil)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(c.Version, c.Mode, c.Level, c.Size)
	// Output:
	// 1 alphanumeric Q 21
}

func ExampleTrace() {
	var tr qr.Trace
	_, err := qr.Encode("01234567", qr.Numeric, qr.M, &qr.Options{Trace: &tr})
	if err != nil {
		log.Fatalln(err)
	}
	for _, l := range tr.Lines()[:6] {
		fmt.Println(l)
	}
	// Output:
	// input normalized mode=numeric level=M length=8
	// version selected version=1 capacity=16 blocks=1 ecc=10
	// bits encoded widths=mode bits=41
	// codewords assembled codewords=16
	// codewords interleaved codewords=26 bits=208
	// data placed size=21
}
