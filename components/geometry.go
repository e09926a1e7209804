package components

import "gonum.org/v1/gonum/spatial/r2"

// Point returns the vector (x, y).
func Point(x, y float64) r2.Vec {
	return r2.Vec{X: x, Y: y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Normalize scales v to unit length. The zero vector stays zero.
func Normalize(v r2.Vec) r2.Vec {
	n := r2.Norm(v)
	if n == 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/n, v)
}

// Add returns a + b.
func Add(a, b r2.Vec) r2.Vec {
	return r2.Add(a, b)
}

// Scale returns v scaled by f.
func Scale(v r2.Vec, f float64) r2.Vec {
	return r2.Scale(f, v)
}

// IsZero reports whether v is exactly (0, 0).
func IsZero(v r2.Vec) bool {
	return v.X == 0 && v.Y == 0
}

// Length returns the magnitude of v.
func Length(v r2.Vec) float64 {
	return r2.Norm(v)
}
