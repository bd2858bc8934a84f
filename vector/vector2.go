// Package vector provides fixed-size 2-D and 3-D float64 coordinate types
// with componentwise arithmetic and the usual geometric operations
// (dot product, Euclidean magnitude, angle, normalization; cross product in
// 3-D). Vectors are immutable value types: every operation returns a new
// value and never mutates its operands.
package vector

import (
	"fmt"
	"math"

	"github.com/JoeSharp/go-gaming/approx"
)

// Vector2 is an immutable 2-D coordinate tuple.
type Vector2 struct {
	X, Y float64
}

// Add returns the componentwise sum v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the componentwise difference v − other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v with each component multiplied by f.
func (v Vector2) Scale(f float64) Vector2 {
	return Vector2{X: f * v.X, Y: f * v.Y}
}

// Dot returns the dot product v · other.
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude returns the Euclidean norm √(x² + y²).
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// AngleBetween returns the angle between v and other in radians,
// acos(dot / (|v|·|other|)). When either operand has zero magnitude the
// result is NaN; callers must avoid zero vectors — there is no guard.
func (v Vector2) AngleBetween(other Vector2) float64 {
	cosTheta := v.Dot(other) / (v.Magnitude() * other.Magnitude())

	return math.Acos(cosTheta)
}

// Normalize returns v scaled to unit magnitude. Undefined (NaN/Inf
// components) when the magnitude is zero; not guarded.
func (v Vector2) Normalize() Vector2 {
	return v.Scale(1.0 / v.Magnitude())
}

// ApproxEq reports componentwise |Δ| <= eps against other.
func (v Vector2) ApproxEq(other Vector2, eps float64) bool {
	return approx.Eq(v.X, other.X, eps) && approx.Eq(v.Y, other.Y, eps)
}

// ApproxEqDefault is ApproxEq with approx.DefaultEpsilon.
func (v Vector2) ApproxEqDefault(other Vector2) bool {
	return v.ApproxEq(other, approx.DefaultEpsilon)
}

// String implements fmt.Stringer for easy debugging.
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
