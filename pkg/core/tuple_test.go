package core

import (
	"math"
	"testing"
)

func TestTuple_PointsAndVectors(t *testing.T) {
	p := NewPoint(4, -4, 3)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("NewPoint should create a tuple with w=1, got w=%f", p.W)
	}

	v := NewVector(4, -4, 3)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("NewVector should create a tuple with w=0, got w=%f", v.W)
	}
}

func TestTuple_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Tuple
		expected Tuple
	}{
		{
			name:     "point plus vector is a point",
			got:      NewPoint(3, -2, 5).Add(NewVector(-2, 3, 1)),
			expected: NewPoint(1, 1, 6),
		},
		{
			name:     "vector plus vector is a vector",
			got:      NewVector(3, -2, 5).Add(NewVector(-2, 3, 1)),
			expected: NewVector(1, 1, 6),
		},
		{
			name:     "point minus point is a vector",
			got:      NewPoint(3, 2, 1).Subtract(NewPoint(5, 6, 7)),
			expected: NewVector(-2, -4, -6),
		},
		{
			name:     "point minus vector is a point",
			got:      NewPoint(3, 2, 1).Subtract(NewVector(5, 6, 7)),
			expected: NewPoint(-2, -4, -6),
		},
		{
			name:     "vector minus vector is a vector",
			got:      NewVector(3, 2, 1).Subtract(NewVector(5, 6, 7)),
			expected: NewVector(-2, -4, -6),
		},
		{
			name:     "negation",
			got:      NewVector(1, -2, 3).Negate(),
			expected: NewVector(-1, 2, -3),
		},
		{
			name:     "scalar multiplication",
			got:      NewVector(1, -2, 3).Multiply(3.5),
			expected: NewVector(3.5, -7, 10.5),
		},
		{
			name:     "scalar division",
			got:      NewVector(1, -2, 3).Divide(2),
			expected: NewVector(0.5, -1, 1.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestTuple_Magnitude(t *testing.T) {
	tests := []struct {
		name     string
		v        Tuple
		expected float64
	}{
		{"unit x", NewVector(1, 0, 0), 1},
		{"unit y", NewVector(0, 1, 0), 1},
		{"unit z", NewVector(0, 0, 1), 1},
		{"positive components", NewVector(1, 2, 3), math.Sqrt(14)},
		{"negative components", NewVector(-1, -2, -3), math.Sqrt(14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Magnitude(); math.Abs(got-tt.expected) > Epsilon {
				t.Errorf("Expected magnitude %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestTuple_Normalize(t *testing.T) {
	v := NewVector(1, 2, 3).Normalize()
	expected := NewVector(1/math.Sqrt(14), 2/math.Sqrt(14), 3/math.Sqrt(14))
	if !v.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, v)
	}

	if mag := v.Magnitude(); math.Abs(mag-1) > Epsilon {
		t.Errorf("Normalized vector should have magnitude 1, got %f", mag)
	}
}

func TestTuple_NormalizeZeroVector(t *testing.T) {
	v := NewVector(0, 0, 0).Normalize()
	if !v.Equals(NewVector(0, 0, 0)) {
		t.Errorf("Zero vector should normalize to itself, got %v", v)
	}
}

func TestTuple_DotAndCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)

	if got := a.Dot(b); got != 20 {
		t.Errorf("Expected dot product 20, got %f", got)
	}

	if got := a.Cross(b); !got.Equals(NewVector(-1, 2, -1)) {
		t.Errorf("Expected cross product (-1, 2, -1), got %v", got)
	}
	if got := b.Cross(a); !got.Equals(NewVector(1, -2, 1)) {
		t.Errorf("Expected cross product (1, -2, 1), got %v", got)
	}
}

func TestTuple_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Tuple
		normal   Tuple
		expected Tuple
	}{
		{
			name:     "approaching at 45 degrees",
			v:        NewVector(1, -1, 0),
			normal:   NewVector(0, 1, 0),
			expected: NewVector(1, 1, 0),
		},
		{
			name:     "off a slanted surface",
			v:        NewVector(0, -1, 0),
			normal:   NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			expected: NewVector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Reflect(tt.normal); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColor_Arithmetic(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)

	if got := c1.Add(c2); !got.Equals(NewColor(1.6, 0.7, 1.0)) {
		t.Errorf("Expected (1.6, 0.7, 1.0), got %v", got)
	}
	if got := c1.Subtract(c2); !got.Equals(NewColor(0.2, 0.5, 0.5)) {
		t.Errorf("Expected (0.2, 0.5, 0.5), got %v", got)
	}
	if got := NewColor(0.2, 0.3, 0.4).Multiply(2); !got.Equals(NewColor(0.4, 0.6, 0.8)) {
		t.Errorf("Expected (0.4, 0.6, 0.8), got %v", got)
	}
	if got := NewColor(1, 0.2, 0.4).Hadamard(NewColor(0.9, 1, 0.1)); !got.Equals(NewColor(0.9, 0.2, 0.04)) {
		t.Errorf("Expected (0.9, 0.2, 0.04), got %v", got)
	}
}
