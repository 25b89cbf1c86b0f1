package material

import (
	"math"

	"github.com/sugarray/go-whitted-raytracer/pkg/core"
	"github.com/sugarray/go-whitted-raytracer/pkg/lights"
)

// Material holds the Phong reflection parameters of a surface.
// Ambient, Diffuse and Specular are typically in [0, 1]; Shininess ranges
// from around 10 (very large highlight) to 200+ (very small highlight).
type Material struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// NewMaterial returns a material with the default Phong parameters:
// white surface, ambient 0.1, diffuse 0.9, specular 0.9, shininess 200.
func NewMaterial() Material {
	return Material{
		Color:     core.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Lighting computes the Phong shading for a point on a surface.
// When the point is in shadow only the ambient term contributes.
func Lighting(m Material, light lights.PointLight, point, eyev, normalv core.Tuple, inShadow bool) core.Color {
	// Combine the surface color with the light's intensity
	effectiveColor := m.Color.Hadamard(light.Intensity)

	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	// Direction to the light source
	lightv := light.Position.Subtract(point).Normalize()

	// Cosine of the angle between the light vector and the normal.
	// Negative means the light is on the other side of the surface.
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	// Cosine of the angle between the reflection vector and the eye.
	// Non-positive means the light reflects away from the eye.
	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
