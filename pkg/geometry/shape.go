package geometry

import (
	"github.com/sugarray/go-whitted-raytracer/pkg/core"
	"github.com/sugarray/go-whitted-raytracer/pkg/material"
)

// Shape is a geometric object that can be intersected by rays. Each variant
// implements its intersection test and normal in object space; the shared
// Intersect and NormalAt wrappers handle the world-space transform once for
// all variants.
type Shape interface {
	// LocalIntersect returns the t values where the object-space ray meets
	// the shape, in ascending order. May be empty.
	LocalIntersect(ray core.Ray) []float64
	// LocalNormalAt returns the surface normal at an object-space point.
	LocalNormalAt(point core.Tuple) core.Tuple

	Transform() core.Matrix
	InverseTransform() core.Matrix
	Material() material.Material
}

// Object carries the transform and material shared by every shape variant.
// The inverse transform is cached when the transform is set, so the hot
// intersection path never inverts a matrix.
type Object struct {
	transform core.Matrix
	inverse   core.Matrix
	material  material.Material
}

// NewObject creates an object with the identity transform and default material
func NewObject() Object {
	return Object{
		transform: core.Identity(),
		inverse:   core.Identity(),
		material:  material.NewMaterial(),
	}
}

// Transform returns the object-to-world transform
func (o *Object) Transform() core.Matrix {
	return o.transform
}

// InverseTransform returns the cached world-to-object transform
func (o *Object) InverseTransform() core.Matrix {
	return o.inverse
}

// SetTransform assigns the object-to-world transform. Returns
// core.ErrSingularMatrix if the matrix cannot be inverted, leaving the
// previous transform in place.
func (o *Object) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	o.transform = m
	o.inverse = inv
	return nil
}

// Material returns the object's material
func (o *Object) Material() material.Material {
	return o.material
}

// SetMaterial assigns the object's material
func (o *Object) SetMaterial(m material.Material) {
	o.material = m
}

// Intersect tests a world-space ray against a shape. The ray is transformed
// into object space, the variant's local test runs there, and the resulting
// t values are wrapped with a reference to the shape.
func Intersect(s Shape, worldRay core.Ray) []Intersection {
	localRay := worldRay.Transform(s.InverseTransform())

	ts := s.LocalIntersect(localRay)
	if len(ts) == 0 {
		return nil
	}

	xs := make([]Intersection, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: s}
	}
	return xs
}

// NormalAt computes the world-space surface normal at a world-space point.
// The local normal is transformed back to world space with the transpose of
// the inverse transform, which keeps normals perpendicular under non-uniform
// scaling, then re-normalized.
func NormalAt(s Shape, worldPoint core.Tuple) core.Tuple {
	inv := s.InverseTransform()
	localPoint := inv.MultiplyTuple(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)

	worldNormal := inv.Transpose().MultiplyTuple(localNormal)
	// The transpose smears the translation row into W; clear it before
	// normalizing so the result is a proper vector.
	worldNormal.W = 0
	return worldNormal.Normalize()
}
