package geometry

import (
	"math"

	"github.com/sugarray/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz-plane through the object-space origin.
type Plane struct {
	Object
}

// NewPlane creates a plane with the identity transform
func NewPlane() *Plane {
	return &Plane{Object: NewObject()}
}

// LocalIntersect returns the single crossing of the ray with y = 0.
// A ray parallel to the plane (or coplanar with it) misses.
func (p *Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt returns the constant plane normal
func (p *Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
