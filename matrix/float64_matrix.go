package matrix

// internal Float64 matrix representation
type Float64Matrix struct {
	nrow int
	ncol int
	data []float64
}

// NewFloat64Matrix creates a new Float64Matrix with r rows and c columns.
// if r or c is not positive, it will panic. A float64 slice is used as the
// underlying storage and the data layout is in row major order, i.e. the
// (i*c + j)-th element in the data slice is the [i, j]-th element in the
// matrix. Rows returned by Row alias the storage.
func NewFloat64Matrix(r, c int) *Float64Matrix {
	if r <= 0 || c <= 0 {
		panic(ErrBadShape)
	}
	return &Float64Matrix{
		nrow: r,
		ncol: c,
		data: make([]float64, r*c),
	}
}

// get the shape of the matrix
func (m *Float64Matrix) Shape() (int, int) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix
func (m *Float64Matrix) Get(r, c int) float64 {
	if r < 0 || c < 0 || r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.data[r*m.ncol+c]
}

// set val to the [r, c]-th element of the matrix
func (m *Float64Matrix) Set(r, c int, val float64) {
	if r < 0 || c < 0 || r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[r*m.ncol+c] = val
}

// increment the [r, c]-th element of the matrix by val
func (m *Float64Matrix) Incr(r, c int, val float64) {
	if r < 0 || c < 0 || r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[r*m.ncol+c] += val
}

// get the r-th row of the matrix, writes through to the matrix
func (m *Float64Matrix) Row(r int) []float64 {
	if r < 0 || r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}
	return m.data[r*m.ncol : (r+1)*m.ncol : (r+1)*m.ncol]
}

// get a copy of the c-th column of the matrix
func (m *Float64Matrix) Col(c int) []float64 {
	if c < 0 || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}

	column := make([]float64, 0, m.nrow)
	for r := 0; r < m.nrow; r += 1 {
		column = append(column, m.data[r*m.ncol+c])
	}
	return column
}

// set every element of the matrix to val
func (m *Float64Matrix) Fill(val float64) {
	for i := range m.data {
		m.data[i] = val
	}
}

// Clone returns a deep copy of the matrix
func (m *Float64Matrix) Clone() *Float64Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Float64Matrix{
		nrow: m.nrow,
		ncol: m.ncol,
		data: data,
	}
}
