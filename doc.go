// Package gaming is a small in-memory maths toolkit for game code: a dense
// matrix kernel and 2-D/3-D vector types built on the same floating-point
// primitives.
//
// 🚀 What is go-gaming?
//
//	A compact, zero-dependency library that brings together:
//		• matrix/ — row-major float64 matrices: validated construction,
//		  indexed access, shape-checked Add/Mul, Scale, Transpose, Trace,
//		  and a recursive cofactor determinant
//		• vector/ — immutable Vector2/Vector3 values: arithmetic, dot
//		  product, magnitude, angles, normalization, and a cross product
//		  computed through the matrix kernel's determinant
//		• approx/ — absolute-epsilon comparison (default 1e-6) for making
//		  floating-point results comparable in tests and application logic
//
// ✨ Why choose go-gaming?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit failures – sentinel errors matched via errors.Is, no panics
//     on user input
//   - Pure Go – no cgo, no hidden deps
//
// Everything operates synchronously on in-memory values supplied by the
// caller; there is no I/O, no persistence, and no shared state beyond a
// Matrix you choose to mutate through Set.
//
//	go get github.com/JoeSharp/go-gaming
package gaming
