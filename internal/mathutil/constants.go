package mathutil

// Tolerance bounds the squared-magnitude test in Quat.Normalize.
const Tolerance = 1e-5

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float64) bool {
	d := a - b
	return d <= eps && d >= -eps
}
