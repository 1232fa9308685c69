package matrix

// Matrix is the read side shared by the probability tables
// and the per-position alignment posteriors
type Matrix interface {
	Shape() (int, int)
	Get(int, int) float64
	Row(int) []float64
}
