package lights

import (
	"github.com/sugarray/go-whitted-raytracer/pkg/core"
)

// PointLight is a light source with no size, existing at a single point
// in space with an intensity (brightness and color). Point lights cast
// hard shadows; there are no area lights or soft shadows.
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
