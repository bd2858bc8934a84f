package vector

import (
	"fmt"
	"math"

	"github.com/JoeSharp/go-gaming/approx"
	"github.com/JoeSharp/go-gaming/matrix"
)

// Vector3 is an immutable 3-D coordinate tuple.
type Vector3 struct {
	X, Y, Z float64
}

// det2 evaluates a 2×2 determinant through the matrix kernel. The cross
// product is deliberately expressed via the shared cofactor routine rather
// than an inlined formula, so the two kernels stay consistent and can be
// tested jointly. A 2×2 literal is always square; a determinant error here
// is a programmer error.
func det2(a0, a1, b0, b1 float64) float64 {
	d, err := matrix.MustNew(2, 2, a0, a1, b0, b1).Det()
	if err != nil {
		panic(err)
	}

	return d
}

// Add returns the componentwise sum v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the componentwise difference v − other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns v with each component multiplied by f.
func (v Vector3) Scale(f float64) Vector3 {
	return Vector3{X: f * v.X, Y: f * v.Y, Z: f * v.Z}
}

// Dot returns the dot product v · other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Magnitude returns the Euclidean norm √(x² + y² + z²).
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// AngleBetween returns the angle between v and other in radians,
// acos(dot / (|v|·|other|)). When either operand has zero magnitude the
// result is NaN; callers must avoid zero vectors — there is no guard.
func (v Vector3) AngleBetween(other Vector3) float64 {
	cosTheta := v.Dot(other) / (v.Magnitude() * other.Magnitude())

	return math.Acos(cosTheta)
}

// Normalize returns v scaled to unit magnitude. Undefined (NaN/Inf
// components) when the magnitude is zero; not guarded.
func (v Vector3) Normalize() Vector3 {
	return v.Scale(1.0 / v.Magnitude())
}

// Cross returns the cross product v × other, computed from three 2×2
// determinants of the matrix kernel:
//
//	x =  det[[vy, vz], [oy, oz]]
//	y = −det[[vx, vz], [ox, oz]]
//	z =  det[[vx, vy], [ox, oy]]
//
// The result is orthogonal to both operands and follows the right-hand rule.
// Adding 0.0 to each component normalizes IEEE negative zero, which the sign
// algebra above would otherwise produce for zero minors; zero components
// always compare and print as plain 0.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: det2(v.Y, v.Z, other.Y, other.Z) + 0.0,
		Y: -det2(v.X, v.Z, other.X, other.Z) + 0.0,
		Z: det2(v.X, v.Y, other.X, other.Y) + 0.0,
	}
}

// ApproxEq reports componentwise |Δ| <= eps against other.
func (v Vector3) ApproxEq(other Vector3, eps float64) bool {
	return approx.Eq(v.X, other.X, eps) &&
		approx.Eq(v.Y, other.Y, eps) &&
		approx.Eq(v.Z, other.Z, eps)
}

// ApproxEqDefault is ApproxEq with approx.DefaultEpsilon.
func (v Vector3) ApproxEqDefault(other Vector3) bool {
	return v.ApproxEq(other, approx.DefaultEpsilon)
}

// String implements fmt.Stringer for easy debugging.
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
