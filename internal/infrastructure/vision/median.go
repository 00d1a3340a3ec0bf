package vision

import "slices"

// median медиана как в numpy: для чётной длины — среднее двух средних.
// Сортирует vals на месте.
func median(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return 0
	}
	slices.Sort(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}
