package material

import (
	"math"
	"testing"

	"github.com/sugarray/go-whitted-raytracer/pkg/core"
	"github.com/sugarray/go-whitted-raytracer/pkg/lights"
)

func TestNewMaterial_Defaults(t *testing.T) {
	m := NewMaterial()

	if !m.Color.Equals(core.White) {
		t.Errorf("Expected white default color, got %v", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected defaults: %+v", m)
	}
}

func TestLighting(t *testing.T) {
	m := NewMaterial()
	position := core.NewPoint(0, 0, 0)

	tests := []struct {
		name     string
		eyev     core.Tuple
		normalv  core.Tuple
		light    lights.PointLight
		inShadow bool
		expected core.Color
	}{
		{
			name:     "eye between light and surface",
			eyev:     core.NewVector(0, 0, -1),
			normalv:  core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, -10), core.White),
			expected: core.NewColor(1.9, 1.9, 1.9),
		},
		{
			name:     "eye offset 45 degrees",
			eyev:     core.NewVector(0, math.Sqrt2/2, -math.Sqrt2/2),
			normalv:  core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, -10), core.White),
			expected: core.NewColor(1.0, 1.0, 1.0),
		},
		{
			name:     "light offset 45 degrees",
			eyev:     core.NewVector(0, 0, -1),
			normalv:  core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 10, -10), core.White),
			expected: core.NewColor(0.7364, 0.7364, 0.7364),
		},
		{
			name:     "eye in the path of the reflection vector",
			eyev:     core.NewVector(0, -math.Sqrt2/2, -math.Sqrt2/2),
			normalv:  core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 10, -10), core.White),
			expected: core.NewColor(1.6364, 1.6364, 1.6364),
		},
		{
			name:     "light behind the surface",
			eyev:     core.NewVector(0, 0, -1),
			normalv:  core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, 10), core.White),
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
		{
			name:     "surface in shadow keeps only ambient",
			eyev:     core.NewVector(0, 0, -1),
			normalv:  core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, -10), core.White),
			inShadow: true,
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lighting(m, tt.light, position, tt.eyev, tt.normalv, tt.inShadow)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
