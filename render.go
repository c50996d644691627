package main

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// referenceExtent is the surface size, in pixels, at which one view unit maps to one pixel.
const referenceExtent = 480

var (
	backgroundColor = color.RGBA{26, 26, 26, 255}
	edgeColor       = color.RGBA{255, 255, 0, 255} // Yellow
)

// Renderer draws the cube wireframe into a Frame.
type Renderer struct {
	frame *Frame
}

func NewRenderer(frame *Frame) *Renderer {
	return &Renderer{frame: frame}
}

// Render resizes the frame to width x height, clears it and draws every cube edge.
func (r *Renderer) Render(points [len(cubeVertices)]mgl64.Vec2, width, height int) {
	r.frame.Resize(width, height)
	if r.frame.Empty() {
		return
	}
	r.frame.Clear(backgroundColor)

	w, h := r.frame.Size()
	scale := float64(min(w, h)) / referenceExtent
	cx, cy := float64(w)/2, float64(h)/2

	toScreen := func(p mgl64.Vec2) (float64, float64) {
		return cx + p.X()*scale, cy - p.Y()*scale
	}

	for _, e := range cubeEdges {
		x1, y1 := toScreen(points[e[0]])
		x2, y2 := toScreen(points[e[1]])
		x1, y1, x2, y2, ok := clipSegment(x1, y1, x2, y2, float64(w-1), float64(h-1))
		if !ok {
			continue
		}
		DrawLine(r.frame.Image(),
			int(math.Round(x1)), int(math.Round(y1)),
			int(math.Round(x2)), int(math.Round(y2)),
			edgeColor)
	}
}

// clipSegment clips the segment to [0, maxX] x [0, maxY] (Liang-Barsky).
// It reports false when the segment is entirely outside or not finite.
func clipSegment(x1, y1, x2, y2, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	for _, v := range [...]float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}

	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1},
		{dx, maxX - x1},
		{-dy, y1},
		{dy, maxY - y1},
	}
	for _, pq := range edges {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}
