package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat64MatrixShape(t *testing.T) {
	m := NewFloat64Matrix(2, 3)

	r, c := m.Shape()

	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
}

func TestFloat64MatrixBadShape(t *testing.T) {
	assert.PanicsWithValue(t, ErrBadShape, func() { NewFloat64Matrix(0, 3) })
	assert.PanicsWithValue(t, ErrBadShape, func() { NewFloat64Matrix(2, -1) })
}

func TestFloat64MatrixGet(t *testing.T) {
	m := NewFloat64Matrix(2, 3)

	val := 0.0
	for r := 0; r < 2; r += 1 {
		for c := 0; c < 3; c += 1 {
			m.Set(r, c, val)
			val += 1.0
		}
	}

	assert.Equal(t, 0.0, m.Get(0, 0))
	assert.Equal(t, 1.0, m.Get(0, 1))
	assert.Equal(t, 2.0, m.Get(0, 2))
	assert.Equal(t, 3.0, m.Get(1, 0))
	assert.Equal(t, 4.0, m.Get(1, 1))
	assert.Equal(t, 5.0, m.Get(1, 2))

	assert.Equal(t, []float64{3, 4, 5}, m.Row(1))
	assert.Equal(t, []float64{1, 4}, m.Col(1))

	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { m.Get(2, 0) })
	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { m.Set(0, 3, 1) })
}

func TestFloat64MatrixIncr(t *testing.T) {
	m := NewFloat64Matrix(2, 2)

	m.Incr(1, 1, 2.5)
	assert.Equal(t, 2.5, m.Get(1, 1))

	m.Incr(1, 1, -1)
	assert.Equal(t, 1.5, m.Get(1, 1))
}

func TestFloat64MatrixRowAliases(t *testing.T) {
	m := NewFloat64Matrix(2, 2)

	row := m.Row(0)
	row[1] = 7
	assert.Equal(t, 7.0, m.Get(0, 1))

	// appending must not spill into the next row
	row = append(row, 9)
	assert.Equal(t, 0.0, m.Get(1, 0))
}

func TestFloat64MatrixFillClone(t *testing.T) {
	m := NewFloat64Matrix(2, 2)
	m.Fill(0.5)

	c := m.Clone()
	m.Set(0, 0, 1)

	assert.Equal(t, 0.5, c.Get(0, 0))
	assert.Equal(t, 0.5, c.Get(1, 1))
	assert.Equal(t, 1.0, m.Get(0, 0))
}
