package core

// Color is an RGB triple. Components are unbounded during rendering;
// clamping to a displayable range happens only at serialization.
type Color struct {
	R, G, B float64
}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero color, also the background color
var Black = Color{}

// White is full intensity on every channel
var White = Color{R: 1, G: 1, B: 1}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors,
// used to blend a surface color with a light's intensity.
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors match within Epsilon per channel
func (c Color) Equals(other Color) bool {
	return floatEquals(c.R, other.R) &&
		floatEquals(c.G, other.G) &&
		floatEquals(c.B, other.B)
}
