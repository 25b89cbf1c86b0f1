package demo

import (
	"github.com/sugarray/go-whitted-raytracer/pkg/core"
	"github.com/sugarray/go-whitted-raytracer/pkg/renderer"
)

// Projectile plots the arc of a projectile launched from the lower left
// corner under gravity and a head wind, one pixel per tick. It exercises
// the point/vector arithmetic: position + velocity is a point, velocity +
// gravity + wind is a vector.
func Projectile(width, height int) *renderer.Canvas {
	canvas := renderer.NewCanvas(width, height)

	position := core.NewPoint(0, 1, 0)
	velocity := core.NewVector(1, 1.8, 0).Normalize().Multiply(11.25)
	gravity := core.NewVector(0, -0.1, 0)
	wind := core.NewVector(-0.01, 0, 0)

	color := core.NewColor(1, 0.8, 0)
	for position.Y > 0 {
		// Canvas y grows downward, world y grows upward
		_ = canvas.WritePixel(int(position.X), height-1-int(position.Y), color)

		position = position.Add(velocity)
		velocity = velocity.Add(gravity).Add(wind)
	}

	return canvas
}
