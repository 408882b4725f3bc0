// Package render assembles a rendered image from per-worker bands and
// writes it to disk.
package render

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"os"

	"github.com/kestrelwing/raylang/pkg/color"
)

// Image is the row-major output raster: width*height pixels, top-to-
// bottom, (0,0) at the upper-left, each channel an 8-bit clamp(round(v
// * 255), 0, 255) of the linear color it was shaded with.
type Image struct {
	Width, Height int
	Pixels        []color.RGB
}

// NewImage allocates a zeroed image of the given size.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]color.RGB, width*height)}
}

// SetPixel writes a pixel at (x, y). No bounds check: callers are the
// render driver's own band loops, which never go out of range.
func (img *Image) SetPixel(x, y int, c color.RGB) {
	img.Pixels[y*img.Width+x] = c
}

// ToImage converts to a standard library image.RGBA for encoding.
func (img *Image) ToImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.Pixels[y*img.Width+x]
			out.SetRGBA(x, y, stdcolor.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return out
}

// SavePNG writes the image to path as a PNG file.
func (img *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img.ToImage())
}
