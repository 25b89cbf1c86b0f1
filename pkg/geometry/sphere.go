package geometry

import (
	"math"

	"github.com/sugarray/go-whitted-raytracer/pkg/core"
)

// Sphere is a unit sphere centered at the object-space origin. Position,
// size and orientation come from the object's transform.
type Sphere struct {
	Object
}

// NewSphere creates a unit sphere with the identity transform
func NewSphere() *Sphere {
	return &Sphere{Object: NewObject()}
}

// LocalIntersect solves |origin + t*direction|^2 = 1 for t. A miss returns
// nil; a tangent hit returns two equal t values.
func (s *Sphere) LocalIntersect(ray core.Ray) []float64 {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}
}

// LocalNormalAt returns the normal at an object-space point, which for a
// unit sphere at the origin is the point itself as a vector.
func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}
