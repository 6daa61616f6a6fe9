package j

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a 2-D float64 array. Construction is column-major: each source
// series becomes one row of the logical view while the storage keeps the
// series as contiguous columns of a row-major dense matrix.
type Matrix struct {
	m mat.Matrix
}

// NewMatrix builds a matrix whose i-th row is cols[i]. Every column must
// have the same length.
func NewMatrix(cols [][]float64) (*Matrix, error) {
	if len(cols) == 0 {
		return &Matrix{m: &mat.Dense{}}, nil
	}
	height := len(cols[0])
	for i, c := range cols {
		if len(c) != height {
			return nil, fmt.Errorf("column %d has length %d, expected %d", i, len(c), height)
		}
	}
	if height == 0 {
		return &Matrix{m: &mat.Dense{}}, nil
	}

	// row-major frame layout: one row per slot, one column per series
	data := make([]float64, 0, height*len(cols))
	for r := 0; r < height; r++ {
		for _, c := range cols {
			data = append(data, c[r])
		}
	}
	return &Matrix{m: mat.NewDense(height, len(cols), data).T()}, nil
}

// Dims returns the number of rows and columns of the logical view.
func (m *Matrix) Dims() (r, c int) {
	if d, ok := m.m.(*mat.Dense); ok && d.IsEmpty() {
		return 0, 0
	}
	return m.m.Dims()
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.m.At(i, j) }

// Mat exposes the gonum view.
func (m *Matrix) Mat() mat.Matrix { return m.m }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	_, c := m.Dims()
	out := make([]float64, c)
	for j := range out {
		out[j] = m.m.At(i, j)
	}
	return out
}

// Equal reports element-wise equality, treating NaN slots as equal.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	r, c := m.Dims()
	or, oc := o.Dims()
	if r != or || c != oc {
		return false
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a, b := m.m.At(i, j), o.m.At(i, j)
			if a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
				return false
			}
		}
	}
	return true
}
