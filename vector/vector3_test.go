// Package vector_test contains unit tests for the Vector3 value type,
// including the determinant-backed cross product.
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JoeSharp/go-gaming/approx"
	"github.com/JoeSharp/go-gaming/vector"
)

// vec3Case pairs two operands with an expected vector result.
type vec3Case struct {
	a, b     vector.Vector3
	expected vector.Vector3
}

// TestVector3Add verifies componentwise addition.
func TestVector3Add(t *testing.T) {
	cases := []vec3Case{
		{
			a:        vector.Vector3{X: 3.0, Y: 4.0, Z: 3.2},
			b:        vector.Vector3{X: 7.0, Y: 2.0, Z: 9.4},
			expected: vector.Vector3{X: 10.0, Y: 6.0, Z: 12.6},
		},
		{
			a:        vector.Vector3{X: -2.0, Y: 15.0, Z: -2.5},
			b:        vector.Vector3{X: 9.0, Y: 2.1, Z: 4.0},
			expected: vector.Vector3{X: 7.0, Y: 17.1, Z: 1.5},
		},
	}

	for _, tc := range cases {
		result := tc.a.Add(tc.b)
		require.True(t, result.ApproxEqDefault(tc.expected), "got %v, want %v", result, tc.expected)
	}
}

// TestVector3Sub verifies componentwise subtraction.
func TestVector3Sub(t *testing.T) {
	cases := []vec3Case{
		{
			a:        vector.Vector3{X: 3.0, Y: 4.0, Z: 3.2},
			b:        vector.Vector3{X: 7.0, Y: 2.0, Z: 1.3},
			expected: vector.Vector3{X: -4.0, Y: 2.0, Z: 1.9},
		},
		{
			a:        vector.Vector3{X: -2.0, Y: 15.0, Z: -7.0},
			b:        vector.Vector3{X: 9.0, Y: 2.1, Z: -4.0},
			expected: vector.Vector3{X: -11.0, Y: 12.9, Z: -3.0},
		},
	}

	for _, tc := range cases {
		result := tc.a.Sub(tc.b)
		require.True(t, result.ApproxEqDefault(tc.expected), "got %v, want %v", result, tc.expected)
	}
}

// TestVector3Scale verifies componentwise scalar multiplication.
func TestVector3Scale(t *testing.T) {
	input := vector.Vector3{X: 5.4, Y: 3.2, Z: -4.1}
	result := input.Scale(4.0)

	require.True(t, result.ApproxEqDefault(vector.Vector3{X: 21.6, Y: 12.8, Z: -16.4}))
}

// TestVector3Dot verifies orthogonal pairs produce a zero dot product.
func TestVector3Dot(t *testing.T) {
	cases := []struct {
		a, b     vector.Vector3
		expected float64
	}{
		{
			a:        vector.Vector3{X: 1.0, Y: 0.0, Z: 0.0},
			b:        vector.Vector3{X: 0.0, Y: 5.0, Z: 0.0},
			expected: 0.0,
		},
		{
			a:        vector.Vector3{X: 1.0, Y: -2.0, Z: 3.0},
			b:        vector.Vector3{X: 4.0, Y: 0.5, Z: -1.0},
			expected: 0.0,
		},
	}

	for _, tc := range cases {
		require.True(t, approx.EqDefault(tc.a.Dot(tc.b), tc.expected))
	}
}

// TestVector3Magnitude verifies the Euclidean norm.
func TestVector3Magnitude(t *testing.T) {
	v := vector.Vector3{X: 2.0, Y: 3.0, Z: 6.0} // 2-3-6-7 quadruple
	require.True(t, approx.EqDefault(v.Magnitude(), 7.0))
}

// TestVector3AngleBetween verifies a known angle and symmetry.
func TestVector3AngleBetween(t *testing.T) {
	a := vector.Vector3{X: 2.0, Y: 2.0, Z: -1.0}
	b := vector.Vector3{X: 5.0, Y: -3.0, Z: 2.0}

	// cos(theta) = dot/(|a||b|) = 2/(3*sqrt(38)) ≈ 0.108
	require.True(t, approx.Eq(a.AngleBetween(b), math.Acos(0.108), 0.001))
	require.Equal(t, a.AngleBetween(b), b.AngleBetween(a)) // angle is symmetric
}

// TestVector3Normalize verifies unit magnitude for assorted nonzero vectors.
func TestVector3Normalize(t *testing.T) {
	cases := []vector.Vector3{
		{X: 1.0, Y: 0.0, Z: 0.0},
		{X: 3.0, Y: -4.0, Z: 12.0},
		{X: -0.2, Y: 0.01, Z: 7.5},
	}

	for _, v := range cases {
		require.True(t, approx.EqDefault(v.Normalize().Magnitude(), 1.0), "vector %v", v)
	}
}

// TestVector3Cross verifies the right-handed basis identities.
func TestVector3Cross(t *testing.T) {
	x := vector.Vector3{X: 1.0, Y: 0.0, Z: 0.0}
	y := vector.Vector3{X: 0.0, Y: 1.0, Z: 0.0}
	z := vector.Vector3{X: 0.0, Y: 0.0, Z: 1.0}

	require.True(t, x.Cross(y).ApproxEqDefault(z)) // x × y = z
	require.True(t, y.Cross(z).ApproxEqDefault(x)) // y × z = x
	require.True(t, z.Cross(x).ApproxEqDefault(y)) // z × x = y

	// anticommutativity: y × x = −z
	require.True(t, y.Cross(x).ApproxEqDefault(z.Scale(-1.0)))
}

// TestVector3CrossZeroSign ensures zero components of a cross product carry a
// positive sign: negating a zero minor must not leak IEEE -0 into results.
func TestVector3CrossZeroSign(t *testing.T) {
	x := vector.Vector3{X: 1.0, Y: 0.0, Z: 0.0}
	y := vector.Vector3{X: 0.0, Y: 1.0, Z: 0.0}

	c := x.Cross(y) // the Y minor is zero and enters negated
	require.False(t, math.Signbit(c.X))
	require.False(t, math.Signbit(c.Y)) // -det of a zero minor normalizes to +0
	require.Equal(t, "(0, 0, 1)", c.String())
}

// TestVector3CrossOrthogonality verifies a × b is orthogonal to both
// operands for arbitrary non-parallel inputs.
func TestVector3CrossOrthogonality(t *testing.T) {
	a := vector.Vector3{X: 2.3, Y: -1.1, Z: 0.5}
	b := vector.Vector3{X: 0.4, Y: 2.2, Z: -3.1}

	c := a.Cross(b)
	require.True(t, approx.EqDefault(c.Dot(a), 0.0)) // orthogonal to a
	require.True(t, approx.EqDefault(c.Dot(b), 0.0)) // orthogonal to b
}

// TestVector3CrossKnownValue pins the cross product against a hand-computed
// result.
func TestVector3CrossKnownValue(t *testing.T) {
	a := vector.Vector3{X: 1.0, Y: 2.0, Z: 3.0}
	b := vector.Vector3{X: 4.0, Y: 5.0, Z: 6.0}

	// (2*6-3*5, 3*4-1*6, 1*5-2*4) = (-3, 6, -3)
	require.True(t, a.Cross(b).ApproxEqDefault(vector.Vector3{X: -3.0, Y: 6.0, Z: -3.0}))
}
