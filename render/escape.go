package render

// Iterate runs z = z*z + c from z = 0 and returns how many iterations
// completed before |z|^2 exceeded 4, or maxIter when it never did.
func Iterate(cx, cy float64, maxIter int) float64 {
	var x, y, xx, yy, xy float64
	for i := range maxIter {
		x = xx - yy + cx
		y = 2*xy + cy

		xx = x * x
		yy = y * y
		xy = x * y
		if xx+yy > 4 {
			return float64(i)
		}
	}
	return float64(maxIter)
}
