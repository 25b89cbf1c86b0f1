// Package demo renders small canvas exercises that predate the full
// rendering pipeline: a clock face drawn with chained transforms, a sphere
// silhouette traced without shading, and a projectile trajectory. They
// remain useful as quick visual checks of the transform and intersection
// math.
package demo

import (
	"math"

	"github.com/sugarray/go-whitted-raytracer/pkg/core"
	"github.com/sugarray/go-whitted-raytracer/pkg/renderer"
)

// Clock draws a clock face onto a square canvas: twelve hour marks placed
// by rotating a single point, plus hour and minute hands for the given
// time. Every mark is a rotation of the same start point, which exercises
// the rotation and translation builders end to end.
func Clock(size int, hour, minute float64) *renderer.Canvas {
	canvas := renderer.NewCanvas(size, size)
	center := float64(size) / 2
	radius := float64(size) * 3.0 / 8.0

	red := core.NewColor(1, 0, 0)
	markPixel(canvas, center, center, red)

	// Hour marks: one twelfth of a turn apart
	for i := 0; i < 12; i++ {
		transform := core.Identity().
			RotateY(float64(i) * math.Pi / 6).
			Scale(radius, 0, radius).
			Translate(center, 0, center)
		p := transform.MultiplyTuple(core.NewPoint(0, 0, 1))
		markPixel(canvas, p.X, p.Z, red)
	}

	// Hands sweep a full turn per 12 hours and per 60 minutes
	drawHand(canvas, center, hour/6*math.Pi, radius-6, core.NewColor(0, 0, 1))
	drawHand(canvas, center, minute/30*math.Pi, radius-3, core.NewColor(0, 1, 0))

	return canvas
}

// drawHand draws a clock hand as a run of points rotated to the given angle
func drawHand(canvas *renderer.Canvas, center, angle, length float64, color core.Color) {
	for i := 1; float64(i) < length; i++ {
		// The canvas y axis points down, so the rotation is negated and
		// the point scaled backwards to keep clock time reading clockwise.
		transform := core.Identity().
			RotateY(-angle).
			Scale(-float64(i), 0, -float64(i)).
			Translate(center, 0, center)
		p := transform.MultiplyTuple(core.NewPoint(0, 0, 1))
		markPixel(canvas, p.X, p.Z, color)
	}
}

// markPixel writes a pixel if it lands on the canvas, ignoring strays
func markPixel(canvas *renderer.Canvas, x, z float64, color core.Color) {
	_ = canvas.WritePixel(int(x), int(z), color)
}
