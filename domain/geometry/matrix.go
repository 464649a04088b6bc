package geometry

import "math"

// Matrix is a 2D affine transform in row-major 2x3 form:
//
//	| A  B  C |
//	| D  E  F |
//
// mapping (x, y) to (A*x + B*y + C, D*x + E*y + F).
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that maps every point to itself.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale returns a scaling transform about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Rotate returns a rotation about the origin by angle radians.
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply returns the matrix product m * other. Applying the result to a
// point is the same as applying other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Then composes m with next so that m is applied first. Combine transform
// lists with it: Identity().Then(a).Then(b) behaves like applying a then b.
func (m Matrix) Then(next Matrix) Matrix {
	return next.Multiply(m)
}

// TransformPoint applies the transform to a point.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// TransformVector applies only the linear part (no translation).
func (m Matrix) TransformVector(x, y float64) (float64, float64) {
	return m.A*x + m.B*y, m.D*x + m.E*y
}

// IsIdentity reports whether m is the identity within a small epsilon.
func (m Matrix) IsIdentity() bool {
	const eps = 1e-10
	return math.Abs(m.A-1) < eps && math.Abs(m.B) < eps && math.Abs(m.C) < eps &&
		math.Abs(m.D) < eps && math.Abs(m.E-1) < eps && math.Abs(m.F) < eps
}

// AspectFillScale returns the uniform scale that makes s fully cover bounds
// while preserving aspect ratio (factor = max of the per-axis ratios). A zero
// dimension in s yields the identity so callers never divide by zero.
func AspectFillScale(s, bounds Size) Matrix {
	if s.Width == 0 || s.Height == 0 {
		return Identity()
	}
	f := math.Max(bounds.Width/s.Width, bounds.Height/s.Height)
	return Scale(f, f)
}

// TranslateCenters returns the translation moving the center of from onto the
// center of to.
func TranslateCenters(from, to Rect) Matrix {
	fc := from.Center()
	tc := to.Center()
	return Translate(tc.X-fc.X, tc.Y-fc.Y)
}
