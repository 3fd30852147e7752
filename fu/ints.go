package fu

// Maxi returns the maximal of given ints or 0 if there is no one
func Maxi(a ...int) int {
	if len(a) == 0 {
		return 0
	}
	r := a[0]
	for _, x := range a[1:] {
		if x > r {
			r = x
		}
	}
	return r
}
