package utils

// Square avoids a math.Pow call on the hot path
func Square(x float64) float64 {
	return x * x
}

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// Linspace returns N evenly spaced samples over [x0, x1], endpoints included
func Linspace(x0, x1 float64, N int) (v []float64) {
	v = make([]float64, N)
	if N == 1 {
		v[0] = x0
		return
	}
	dx := (x1 - x0) / float64(N-1)
	for i := range v {
		v[i] = x0 + float64(i)*dx
	}
	return
}
