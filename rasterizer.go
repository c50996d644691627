package main

import (
	"image"
	"image/color"
	"math"
)

// Frame is the CPU-side surface the cube is drawn on.
type Frame struct {
	img *image.RGBA
}

// NewFrame allocates a frame of the given size. Non-positive sizes yield an empty frame.
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize reallocates the pixel buffer when the size changed.
func (f *Frame) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if f.img != nil && f.img.Bounds().Dx() == width && f.img.Bounds().Dy() == height {
		return
	}
	f.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Size returns the frame dimensions in pixels.
func (f *Frame) Size() (width, height int) {
	return f.img.Bounds().Dx(), f.img.Bounds().Dy()
}

// Empty reports whether the frame has no pixels.
func (f *Frame) Empty() bool {
	w, h := f.Size()
	return w == 0 || h == 0
}

// Image exposes the underlying pixel buffer.
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// Clear fills the whole frame with col.
func (f *Frame) Clear(col color.RGBA) {
	pix := f.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) using a DDA walk.
// Pixels outside the image are skipped.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))

	var xInc, yInc float64
	if steps > 0 {
		xInc = dx / steps
		yInc = dy / steps
	}

	x := float64(x1)
	y := float64(y1)

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	for i := 0; i <= int(steps); i++ {
		ix := int(math.Round(x))
		iy := int(math.Round(y))
		if ix >= 0 && ix < w && iy >= 0 && iy < h {
			offset := img.PixOffset(ix, iy)
			img.Pix[offset] = col.R
			img.Pix[offset+1] = col.G
			img.Pix[offset+2] = col.B
			img.Pix[offset+3] = col.A
		}
		x += xInc
		y += yInc
	}
}
