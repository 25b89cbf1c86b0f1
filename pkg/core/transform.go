package core

import "math"

// Transform builders. Chained transforms compose via matrix multiplication
// right to left: T4.Multiply(T3).Multiply(T2).Multiply(T1) applies T1 first.
// The fluent methods below read in application order instead.

// Translation returns a matrix that moves points by (x, y, z).
// Vectors (W=0) are unaffected.
func Translation(x, y, z float64) Matrix {
	return Matrix{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scaling returns a matrix that scales each axis independently
func Scaling(x, y, z float64) Matrix {
	return Matrix{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a rotation of rad radians around the x axis
func RotationX(rad float64) Matrix {
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Matrix{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation of rad radians around the y axis
func RotationY(rad float64) Matrix {
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Matrix{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation of rad radians around the z axis
func RotationZ(rad float64) Matrix {
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Matrix{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing returns a shear matrix where each parameter moves one coordinate
// in proportion to another: xy is x moved in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Matrix{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate left-multiplies a translation so chains read in application order
func (m Matrix) Translate(x, y, z float64) Matrix {
	return Translation(x, y, z).Multiply(m)
}

// Scale left-multiplies a scaling
func (m Matrix) Scale(x, y, z float64) Matrix {
	return Scaling(x, y, z).Multiply(m)
}

// RotateX left-multiplies an x rotation
func (m Matrix) RotateX(rad float64) Matrix {
	return RotationX(rad).Multiply(m)
}

// RotateY left-multiplies a y rotation
func (m Matrix) RotateY(rad float64) Matrix {
	return RotationY(rad).Multiply(m)
}

// RotateZ left-multiplies a z rotation
func (m Matrix) RotateZ(rad float64) Matrix {
	return RotationZ(rad).Multiply(m)
}

// Shear left-multiplies a shearing
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}

// ViewTransform returns the world-to-camera matrix for an eye at from,
// looking at to, with the given up hint. The standard look-at construction:
// orient the basis, then translate the eye to the origin.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
