//go:build ignore

// gen_fixtures creates a small demo image tree for smoke-testing the
// converter. Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	for _, sub := range []string{"icons", "logos", "backgrounds"} {
		os.MkdirAll(filepath.Join(dir, sub), 0o755)
	}

	// Icon: white with a blue square (PNG, 32x32)
	writePNG(filepath.Join(dir, "icons", "test_icon.png"), iconImage(32))

	// Logo: solid red banner (PNG, 64x32)
	writePNG(filepath.Join(dir, "logos", "company_logo.png"), solid(64, 32, color.NRGBA{R: 255, A: 255}))

	// Background: horizontal gradient (PNG, 128x64)
	writePNG(filepath.Join(dir, "backgrounds", "gradient.png"), gradient(128, 64))

	// Pattern: checker (BMP, 16x16)
	writeBMP(filepath.Join(dir, "pattern.bmp"), checker(16))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 4 fixtures in %s\n", dir)
}

func iconImage(size int) *image.NRGBA {
	img := solid(size, size, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	for y := size / 4; y < 3*size/4; y++ {
		for x := size / 4; x < 3*size/4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	return img
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / w)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v / 2, B: 255 - v, A: 255})
		}
	}
	return img
}

func checker(size int) *image.NRGBA {
	img := solid(size, size, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x += 2 {
			if (x+y)%4 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{A: 255})
				img.SetNRGBA(x+1, y+1, color.NRGBA{A: 255})
			}
		}
	}
	return img
}

func writePNG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeBMP(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
