// Package header generates the C header artifacts that carry RGB565
// pixel arrays into firmware builds, and derives the identifiers that
// name the symbols inside them.
package header

import (
	"bytes"
	"fmt"
	"strings"
)

// Extension is the artifact file extension, including the dot.
const Extension = ".h"

// Generate assembles the full text of one artifact from a derived
// identifier, the source file name (provenance comment only), the
// image dimensions, and a row-major RGB565 buffer of length
// width*height. The output is the wire format downstream firmware
// compiles against, so every byte is fixed: hex case, padding,
// trailing commas, the absence of a final newline.
func Generate(ident, sourceName string, width, height int, pixels []uint16) []byte {
	g := &generator{
		ident:  ident,
		source: sourceName,
		width:  width,
		height: height,
	}
	g.comment()
	g.directives()
	g.constants()
	g.array(pixels)
	g.descriptor()
	return g.bytes()
}

// generator accumulates the named sections of one artifact.
type generator struct {
	buf    bytes.Buffer
	ident  string
	source string
	width  int
	height int
}

func (g *generator) line(format string, args ...any) {
	fmt.Fprintf(&g.buf, format+"\n", args...)
}

func (g *generator) comment() {
	g.line("/*")
	g.line(" * Generated from: %s", g.source)
	g.line(" * Image size: %dx%d pixels", g.width, g.height)
	g.line(" * Format: RGB565")
	g.line(" */")
	g.line("")
}

func (g *generator) directives() {
	g.line("#pragma once")
	g.line("#include <stdint.h>")
	g.line("")
}

func (g *generator) constants() {
	upper := strings.ToUpper(g.ident)
	g.line("#define %s_WIDTH  %d", upper, g.width)
	g.line("#define %s_HEIGHT %d", upper, g.height)
	g.line("")
}

// array emits the pixel data, one image row per line, values as
// uppercase zero-padded 4-digit hex, trailing comma on every row but
// the last.
func (g *generator) array(pixels []uint16) {
	g.line("const uint16_t %s_data[%d] = {", g.ident, g.width*g.height)

	cells := make([]string, g.width)
	for y := 0; y < g.height; y++ {
		row := pixels[y*g.width : (y+1)*g.width]
		for x, p := range row {
			cells[x] = fmt.Sprintf("0x%04X", p)
		}
		sep := ","
		if y == g.height-1 {
			sep = ""
		}
		g.line("    %s%s", strings.Join(cells, ", "), sep)
	}

	g.line("};")
	g.line("")
}

func (g *generator) descriptor() {
	upper := strings.ToUpper(g.ident)
	g.line("typedef struct {")
	g.line("    const uint16_t* data;")
	g.line("    uint16_t width;")
	g.line("    uint16_t height;")
	g.line("} %s_t;", g.ident)
	g.line("")
	g.line("const %s_t %s = {", g.ident, g.ident)
	g.line("    .data = %s_data,", g.ident)
	g.line("    .width = %s_WIDTH,", upper)
	g.line("    .height = %s_HEIGHT", upper)
	g.line("};")
}

// bytes returns the accumulated artifact without a trailing newline.
func (g *generator) bytes() []byte {
	return bytes.TrimSuffix(g.buf.Bytes(), []byte("\n"))
}
