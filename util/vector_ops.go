package util

import "gonum.org/v1/gonum/floats"

// sum the vector
func VectorSum(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return floats.Sum(data)
}

// Normalize divides every element of data by the sum of data in place
// and reports whether it did so. A zero sum leaves data untouched.
func Normalize(data []float64) bool {
	total := VectorSum(data)
	if total == 0 {
		return false
	}
	for i := range data {
		data[i] /= total
	}
	return true
}

// ArgMax returns the index of the first maximum element, -1 for an
// empty vector
func ArgMax(data []float64) int {
	if len(data) == 0 {
		return -1
	}
	return floats.MaxIdx(data)
}
