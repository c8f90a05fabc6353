// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qr encodes text as a QR code.
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/unixdj/qrgen"
	"github.com/unixdj/qrgen/coding"
	"github.com/unixdj/qrgen/internal/style"
	"go.uber.org/zap"
)

var g = struct {
	opts   qr.Options // encoder options
	fn     string     // filename
	sfn    string     // style filename
	mode   string     // encoding mode name
	level  string     // error correction level name
	format int        // output file format
	rev    bool       // reverse colours
	cx     int        // randr source X coordinate index in inc
	inc    [2]int     // randr source X,Y coordinate increments
	bg, fg colour     // colours
	iso    bool       // version dependent field widths
	upper  bool       // uppercase
	trace  bool       // print trace
}{
	mode:  "auto",
	inc:   [2]int{1, 1},
	bg:    colour{0xff, 0xff, 0xff, 0xff},
	fg:    colour{0x00, 0x00, 0x00, 0xff},
	level: "m",
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Invalid mode and level names fall back to byte
mode and level M with a warning.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrgen version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

// colour is a getopt.Value for colours in style file syntax.
type colour color.RGBA

func (c *colour) String() string { return style.Hex(color.RGBA(*c)) }

func (c *colour) Set(s string, _ getopt.Option) error {
	v, err := style.ParseColor(s)
	if err != nil {
		return err
	}
	*c = colour(v)
	return nil
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii", "html", "htmli",
}

func text(f func(*qr.Code) string) func(*qr.Code, io.Writer) error {
	return func(c *qr.Code, w io.Writer) error {
		_, err := io.WriteString(w, f(c))
		return err
	}
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	eps,
	text((*qr.Code).String),
	text((*qr.Code).ASCII),
	text(func(c *qr.Code) string { return c.HTML() + "\n" }),
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits, optionally preceded by "#", `+
		`or colour name; overrides the style file`, "RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.opts.Latin1, '1', "convert byte mode text to Latin-1")
	getopt.Flag(opt(func() { g.mode = "byte" }), '8',
		`encode entire data in byte mode; same as "-M byte"`).SetFlag()
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.iso, 'I', "use version dependent character count "+
		"widths and 11 bit alphanumeric pairs")
	getopt.Flag(&g.opts.Parallel, 'P', "evaluate masks concurrently")
	getopt.Flag(&g.trace, 'd', "print the encoding trace to standard error")
	getopt.FlagLong(&g.mode, "mode", 'M', `encoding mode: `+
		`numeric, alphanumeric, byte, kanji, or auto for the densest `+
		`mode accepting the whole input`, "mode")
	getopt.Flag(&g.sfn, 'c', `style file (HCL) with background, `+
		`foreground, marker, unset, pixel_size and padding`, "file")
	border := getopt.Unsigned('m', 2, &getopt.UnsignedLimit{0, 16, 0, 0},
		`quiet zone modules; overrides the style file`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "m",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 4, &getopt.UnsignedLimit{0, 8, 0, 0},
		fmt.Sprintf(`image pixels (type eps[i]: points) per module, `+
			`clamped to %d-%d; overrides the style file; `+
			`ignored for types utf8[i] and ascii[i]`,
			qr.MinPixelSize, qr.MaxPixelSize), "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if g.fn == "-" {
		g.fn = ""
	}
	g.level = *lev
	if g.iso {
		g.opts.Widths = coding.ISOWidths
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}

	st := qr.DefaultStyle()
	if g.sfn != "" {
		var err error
		if st, err = qr.LoadStyle(g.sfn); err != nil {
			log.Fatalln(err)
		}
	}
	if getopt.IsSet('B') {
		st.Background = color.RGBA(g.bg)
	}
	if getopt.IsSet('F') {
		st.Foreground = color.RGBA(g.fg)
	}
	if getopt.IsSet('s') {
		st.PixelSize = int(*scale)
	}
	if getopt.IsSet('m') {
		st.Padding = int(*border)
	}
	g.opts.Style = &st
}

// newLogger returns a console logger for warnings.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		log.Fatalln(err)
	}
	return l
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	logger := newLogger()
	defer logger.Sync()
	g.opts.Logger = logger
	var tr qr.Trace
	if g.trace {
		g.opts.Trace = &tr
	}
	c, err := qr.EncodeString(s, g.mode, g.level, &g.opts)
	if g.trace {
		fmt.Fprint(os.Stderr, tr.String())
	}
	if err != nil {
		log.Fatalln(err)
	}
	write(c)
}

func write(c *qr.Code) {
	w := os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c = randr(c)
	c.Reverse = g.rev
	err := encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// randr rotates and reflects c.
func randr(c *qr.Code) *qr.Code {
	cx, inc := g.cx, g.inc
	if cx == 0 && inc == [2]int{1, 1} {
		return c
	}
	b := make([]byte, 0, len(c.Bitmap))
	var coord [2]int
	siz := c.Size
	coord[cx^1] = (siz - 1) & inc[1]
	for y := 0; y < siz; y++ {
		coord[cx] = (siz - 1) & inc[0]
		var bb byte
		for x := 0; x < siz; x++ {
			bb <<= 1
			if c.Black(coord[0], coord[1]) {
				bb |= 1
			}
			if x&7 == 7 {
				b = append(b, bb)
			}
			coord[cx] += inc[0]
		}
		if siz&7 != 0 {
			b = append(b, bb<<(8-siz&7))
		}
		coord[cx^1] += inc[1]
	}
	c.Bitmap = b
	return c
}

// eps writes c as Encapsulated PostScript, one point per pixel of
// scale, centred on a letter size page.
func eps(c *qr.Code, w io.Writer) error {
	const midx, midy = 306, 396
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	fmt.Fprintf(w, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: qrgen https://github.com/unixdj/qrgen
%%%%Title: QR Code %s-%s
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		c.Version, c.Level, xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale)
	if c.Palette != nil {
		bg, fg := rgb(c.Palette[0]), rgb(c.Palette[1])
		if c.Reverse {
			bg, fg = fg, bg
		}
		fmt.Fprintf(w, `gsave
newpath %d %d moveto
%d dup neg scale
%.3g %.3g %.3g setrgbcolor
1 0 rlineto stroke
grestore
%.3g %.3g %.3g setrgbcolor
`,
			-bord, siz/2, siz+2*bord,
			bg[0], bg[1], bg[2], fg[0], fg[1], fg[2])
	}
	fmt.Fprintln(w, "newpath 0 0 moveto")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			s := x
			for x < siz && !c.Black(x, y) {
				x++
			}
			if x == siz {
				break
			}
			b := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(w, "%d %d p ", x-b, b-s)
		}
		fmt.Fprintln(w, "r")
	}
	_, err := fmt.Fprintln(w, "stroke grestore\nend\n%%Trailer")
	return err
}

// rgb returns the components of c scaled to [0, 1].
func rgb(c color.Color) [3]float64 {
	r, g, b, _ := c.RGBA()
	return [3]float64{float64(r) / 0xffff, float64(g) / 0xffff,
		float64(b) / 0xffff}
}
