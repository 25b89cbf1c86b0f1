package world

import (
	"github.com/sugarray/go-whitted-raytracer/pkg/core"
	"github.com/sugarray/go-whitted-raytracer/pkg/geometry"
	"github.com/sugarray/go-whitted-raytracer/pkg/lights"
	"github.com/sugarray/go-whitted-raytracer/pkg/material"
)

// World owns the shapes and lights of a scene. It is assembled once and
// treated as read-only for the duration of a render, so any number of
// workers may trace rays through it concurrently.
type World struct {
	Shapes []geometry.Shape
	Lights []lights.PointLight
}

// New creates an empty world
func New() *World {
	return &World{}
}

// Default returns the canonical two-sphere test world: an outer sphere with
// a green-ish material and a half-size inner sphere, lit by a single white
// light up and to the left of the eye.
func Default() *World {
	outer := geometry.NewSphere()
	m := material.NewMaterial()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	if err := inner.SetTransform(core.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err) // scaling by 0.5 is never singular
	}

	return &World{
		Shapes: []geometry.Shape{outer, inner},
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White),
		},
	}
}

// AddShape appends a shape to the world
func (w *World) AddShape(s geometry.Shape) {
	w.Shapes = append(w.Shapes, s)
}

// AddLight appends a light to the world
func (w *World) AddLight(l lights.PointLight) {
	w.Lights = append(w.Lights, l)
}

// Intersect returns every intersection of the ray with the world's shapes,
// merged and sorted by ascending t.
func (w *World) Intersect(ray core.Ray) []geometry.Intersection {
	var xs []geometry.Intersection
	for _, shape := range w.Shapes {
		xs = append(xs, geometry.Intersect(shape, ray)...)
	}
	geometry.SortIntersections(xs)
	return xs
}

// IsShadowed reports whether the point is shadowed from the given light:
// a shadow ray cast toward the light hits something closer than the light.
func (w *World) IsShadowed(point core.Tuple, light lights.PointLight) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()

	shadowRay := core.NewRay(point, toLight.Normalize())
	if hit, ok := geometry.Hit(w.Intersect(shadowRay)); ok {
		return hit.T < distance
	}
	return false
}

// computations holds the precomputed state of a hit used for shading.
type computations struct {
	object    geometry.Shape
	point     core.Tuple
	overPoint core.Tuple
	eyev      core.Tuple
	normalv   core.Tuple
	inside    bool
}

// prepareComputations derives the hit point, eye and normal vectors, and the
// over point. When the hit is inside a shape the normal is inverted so the
// surface still faces the eye. The over point is nudged along the normal by
// Epsilon to keep shadow rays from re-intersecting the surface they left.
func prepareComputations(hit geometry.Intersection, ray core.Ray) computations {
	point := ray.Position(hit.T)
	eyev := ray.Direction.Negate()
	normalv := geometry.NormalAt(hit.Object, point)

	inside := false
	if normalv.Dot(eyev) < 0 {
		inside = true
		normalv = normalv.Negate()
	}

	return computations{
		object:    hit.Object,
		point:     point,
		overPoint: point.Add(normalv.Multiply(core.Epsilon)),
		eyev:      eyev,
		normalv:   normalv,
		inside:    inside,
	}
}

// shadeHit computes the color at a precomputed hit, summing the Phong
// contribution of every light with its own shadow test.
func (w *World) shadeHit(comps computations) core.Color {
	color := core.Black
	for _, light := range w.Lights {
		inShadow := w.IsShadowed(comps.overPoint, light)
		color = color.Add(material.Lighting(
			comps.object.Material(), light,
			comps.overPoint, comps.eyev, comps.normalv, inShadow,
		))
	}
	return color
}

// ColorAt traces a ray into the world and returns the color it sees.
// Rays that hit nothing see the black background.
func (w *World) ColorAt(ray core.Ray) core.Color {
	hit, ok := geometry.Hit(w.Intersect(ray))
	if !ok {
		return core.Black
	}
	return w.shadeHit(prepareComputations(hit, ray))
}
