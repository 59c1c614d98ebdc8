package gamut

import "golang.org/x/image/math/f64"

// The conversion engine works on row-major 3x3 matrices and column
// vectors from golang.org/x/image/math/f64. Every model transform runs
// in float64 regardless of the color's storage type; values are
// narrowed back to storage in a single cast at the end.

// applyTransform multiplies a row-major 3x3 matrix by a column vector.
func applyTransform(m f64.Mat3, v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// mulTransform composes two row-major 3x3 matrices so that applying
// the product equals applying b, then a.
func mulTransform(a, b f64.Mat3) f64.Mat3 {
	var p f64.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p[3*r+c] = a[3*r]*b[c] + a[3*r+1]*b[3+c] + a[3*r+2]*b[6+c]
		}
	}
	return p
}

// identityTransform returns the 3x3 identity.
func identityTransform() f64.Mat3 {
	return f64.Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}
