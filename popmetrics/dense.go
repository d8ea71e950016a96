package popmetrics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are
// non-positive.
var ErrInvalidDimensions = errors.New("popmetrics: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside the
// valid range.
var ErrIndexOutOfBounds = errors.New("popmetrics: index out of bounds")

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values, trimmed to the handful of
// operations the population covariance/correlation computation needs:
// construction, indexed access, transpose, multiply, and scale.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

func (m *Dense) Rows() int { return m.r }
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*m.c + col, nil
}

func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// transpose returns a copy of m with rows and columns swapped.
func (m *Dense) transpose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[base+j]
		}
	}

	return out
}

// mul computes the matrix product a*b.
func mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("popmetrics: mul dimension mismatch (%dx%d)*(%dx%d)", a.r, a.c, b.r, b.c)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		aBase := i * a.c
		oBase := i * out.c
		for k := 0; k < a.c; k++ {
			av := a.data[aBase+k]
			if av == 0 {
				continue
			}
			bBase := k * b.c
			for j := 0; j < b.c; j++ {
				out.data[oBase+j] += av * b.data[bBase+j]
			}
		}
	}

	return out, nil
}

// scale multiplies every element of m by s and returns a new Dense.
func scale(m *Dense, s float64) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v * s
	}

	return out
}

// centerColumns returns a copy of X with each column's mean subtracted, and
// the per-column means.
func centerColumns(X *Dense) (*Dense, []float64) {
	means := make([]float64, X.c)
	for i := 0; i < X.r; i++ {
		base := i * X.c
		for j := 0; j < X.c; j++ {
			means[j] += X.data[base+j]
		}
	}
	invR := 1.0 / float64(X.r)
	for j := range means {
		means[j] *= invR
	}

	out := &Dense{r: X.r, c: X.c, data: make([]float64, len(X.data))}
	for i := 0; i < X.r; i++ {
		base := i * X.c
		for j := 0; j < X.c; j++ {
			out.data[base+j] = X.data[base+j] - means[j]
		}
	}

	return out, means
}

// covariance computes the sample covariance of X's columns: (Xcᵀ Xc)/(r-1).
func covariance(X *Dense) (*Dense, []float64, error) {
	if X.r < 2 {
		return nil, nil, ErrInsufficientSamples
	}

	Xc, means := centerColumns(X)
	Xct := Xc.transpose()
	G, err := mul(Xct, Xc)
	if err != nil {
		return nil, nil, err
	}

	return scale(G, 1.0/float64(X.r-1)), means, nil
}

// correlation computes the Pearson correlation of X's columns via z-scoring.
// A column with zero variance becomes an all-zero row/column instead of
// producing NaN.
func correlation(X *Dense) (*Dense, []float64, []float64, error) {
	if X.r < 2 {
		return nil, nil, nil, ErrInsufficientSamples
	}

	Xc, means := centerColumns(X)
	stds := make([]float64, X.c)
	sumsq := make([]float64, X.c)
	inv := 1.0 / float64(X.r-1)
	for i := 0; i < Xc.r; i++ {
		base := i * Xc.c
		for j := 0; j < Xc.c; j++ {
			v := Xc.data[base+j]
			sumsq[j] += v * v
		}
	}
	for j := range stds {
		stds[j] = math.Sqrt(sumsq[j] * inv)
	}

	invStd := make([]float64, X.c)
	for j, s := range stds {
		if s != 0 {
			invStd[j] = 1.0 / s
		}
	}

	Z := &Dense{r: Xc.r, c: Xc.c, data: make([]float64, len(Xc.data))}
	for i := 0; i < Xc.r; i++ {
		base := i * Xc.c
		for j := 0; j < Xc.c; j++ {
			Z.data[base+j] = Xc.data[base+j] * invStd[j]
		}
	}

	Zt := Z.transpose()
	G, err := mul(Zt, Z)
	if err != nil {
		return nil, nil, nil, err
	}

	return scale(G, inv), means, stds, nil
}
