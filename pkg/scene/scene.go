package scene

import (
	"math"

	"github.com/sugarray/go-whitted-raytracer/pkg/core"
	"github.com/sugarray/go-whitted-raytracer/pkg/geometry"
	"github.com/sugarray/go-whitted-raytracer/pkg/lights"
	"github.com/sugarray/go-whitted-raytracer/pkg/material"
	"github.com/sugarray/go-whitted-raytracer/pkg/renderer"
	"github.com/sugarray/go-whitted-raytracer/pkg/world"
)

// Scene bundles a world with the camera that renders it
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// Render renders the scene to a canvas
func (s *Scene) Render() *renderer.Canvas {
	return s.Camera.Render(s.World)
}

// NewDefaultScene returns the two-sphere test world viewed head-on.
// Useful as a fast smoke-test render.
func NewDefaultScene(width, height int) *Scene {
	camera := renderer.NewCamera(width, height, math.Pi/2)
	view := core.ViewTransform(
		core.NewPoint(0, 0, -5),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 1, 0),
	)
	if err := camera.SetTransform(view); err != nil {
		panic(err) // a look-at matrix is always invertible
	}

	return &Scene{World: world.Default(), Camera: camera}
}

// NewThreeSphereScene builds the classic showcase: a matte floor plane
// with three glossy spheres of different sizes and colors, one light
// casting hard shadows between them.
func NewThreeSphereScene(width, height int) *Scene {
	w := world.New()

	floor := geometry.NewPlane()
	floorMaterial := material.NewMaterial()
	floorMaterial.Color = core.NewColor(1, 0.9, 0.9)
	floorMaterial.Specular = 0
	floor.SetMaterial(floorMaterial)
	w.AddShape(floor)

	middle := geometry.NewSphere()
	mustSetTransform(&middle.Object, core.Translation(-0.5, 1, 0.5))
	middleMaterial := material.NewMaterial()
	middleMaterial.Color = core.NewColor(0.1, 1, 0.5)
	middleMaterial.Diffuse = 0.7
	middleMaterial.Specular = 0.3
	middle.SetMaterial(middleMaterial)
	w.AddShape(middle)

	right := geometry.NewSphere()
	mustSetTransform(&right.Object, core.Identity().
		Scale(0.5, 0.5, 0.5).
		Translate(1.5, 0.5, -0.5))
	rightMaterial := material.NewMaterial()
	rightMaterial.Color = core.NewColor(0.5, 1, 0.1)
	rightMaterial.Diffuse = 0.7
	rightMaterial.Specular = 0.3
	right.SetMaterial(rightMaterial)
	w.AddShape(right)

	left := geometry.NewSphere()
	mustSetTransform(&left.Object, core.Identity().
		Scale(0.33, 0.33, 0.33).
		Translate(-1.5, 0.33, -0.75))
	leftMaterial := material.NewMaterial()
	leftMaterial.Color = core.NewColor(1, 0.8, 0.1)
	leftMaterial.Diffuse = 0.7
	leftMaterial.Specular = 0.3
	left.SetMaterial(leftMaterial)
	w.AddShape(left)

	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	view := core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)
	if err := camera.SetTransform(view); err != nil {
		panic(err)
	}

	return &Scene{World: w, Camera: camera}
}

// mustSetTransform panics on a singular transform. Scene construction uses
// only translations, rotations and nonzero scalings, all invertible.
func mustSetTransform(o *geometry.Object, m core.Matrix) {
	if err := o.SetTransform(m); err != nil {
		panic(err)
	}
}
