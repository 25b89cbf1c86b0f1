package demo

import (
	"github.com/sugarray/go-whitted-raytracer/pkg/core"
	"github.com/sugarray/go-whitted-raytracer/pkg/geometry"
	"github.com/sugarray/go-whitted-raytracer/pkg/renderer"
)

// Silhouette casts a ray per pixel at a unit sphere and paints every hit a
// flat color, producing the sphere's shadow on a wall behind it. No
// shading, no camera: one fixed eye in front of a wall plane.
func Silhouette(size int) *renderer.Canvas {
	canvas := renderer.NewCanvas(size, size)
	sphere := geometry.NewSphere()
	color := core.NewColor(1, 0.2, 0.6)

	rayOrigin := core.NewPoint(0, 0, -5)
	wallZ := 10.0
	wallSize := 7.0
	pixelSize := wallSize / float64(size)
	half := wallSize / 2

	for y := 0; y < size; y++ {
		// Canvas origin is the top left corner; the wall origin is its
		// center, so y walks downward from +half.
		worldY := half - pixelSize*float64(y)
		for x := 0; x < size; x++ {
			worldX := -half + pixelSize*float64(x)

			target := core.NewPoint(worldX, worldY, wallZ)
			ray := core.NewRay(rayOrigin, target.Subtract(rayOrigin).Normalize())

			if _, ok := geometry.Hit(geometry.Intersect(sphere, ray)); ok {
				_ = canvas.WritePixel(x, y, color)
			}
		}
	}

	return canvas
}
