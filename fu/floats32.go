package fu

func Fill(a []float32, v float32) []float32 {
	for i := range a {
		a[i] = v
	}
	return a
}

func Floats64(a []int) []float64 {
	r := make([]float64, len(a))
	for i, x := range a {
		r[i] = float64(x)
	}
	return r
}

func Sumi(a []int) int {
	c := 0
	for _, x := range a {
		c += x
	}
	return c
}
