package popmetrics

import "errors"

// ErrInsufficientSamples is returned by Covariance/Correlation when fewer
// than two generations have been recorded.
var ErrInsufficientSamples = errors.New("popmetrics: at least 2 recorded generations are required")

// row holds one generation's (count, density, delta) metrics.
type row struct {
	count   float64
	density float64
	delta   float64
}

// Recorder accumulates one row per recorded generation: live-cell count,
// live-cell density (count/total), and delta versus the previous
// generation's count.
type Recorder struct {
	totalCells int
	rows       []row
	lastCount  int
	hasLast    bool
}

// NewRecorder creates a Recorder for a grid with totalCells observable
// cells, used to compute density.
func NewRecorder(totalCells int) *Recorder {
	if totalCells <= 0 {
		panic("popmetrics: totalCells must be positive")
	}

	return &Recorder{totalCells: totalCells}
}

// Record appends a row for a generation with the given live-cell count.
func (r *Recorder) Record(liveCount int) {
	delta := 0.0
	if r.hasLast {
		delta = float64(liveCount - r.lastCount)
	}
	r.rows = append(r.rows, row{
		count:   float64(liveCount),
		density: float64(liveCount) / float64(r.totalCells),
		delta:   delta,
	})
	r.lastCount = liveCount
	r.hasLast = true
}

// Len returns the number of recorded generations.
func (r *Recorder) Len() int {
	return len(r.rows)
}

// matrix lays the recorded rows into a Dense with columns [count, density,
// delta].
func (r *Recorder) matrix() (*Dense, error) {
	m, err := NewDense(len(r.rows), 3)
	if err != nil {
		return nil, err
	}
	for i, rr := range r.rows {
		_ = m.Set(i, 0, rr.count)
		_ = m.Set(i, 1, rr.density)
		_ = m.Set(i, 2, rr.delta)
	}

	return m, nil
}

// Covariance computes the 3x3 sample covariance matrix over the recorded
// (count, density, delta) columns. Requires at least two recorded rows.
func (r *Recorder) Covariance() (*Dense, error) {
	if len(r.rows) < 2 {
		return nil, ErrInsufficientSamples
	}
	m, err := r.matrix()
	if err != nil {
		return nil, err
	}
	cov, _, err := covariance(m)

	return cov, err
}

// Correlation computes the 3x3 Pearson correlation matrix over the recorded
// (count, density, delta) columns, z-scored per column; a column with zero
// variance becomes all zeros rather than NaN. Requires at least two
// recorded rows.
func (r *Recorder) Correlation() (*Dense, error) {
	if len(r.rows) < 2 {
		return nil, ErrInsufficientSamples
	}
	m, err := r.matrix()
	if err != nil {
		return nil, err
	}
	corr, _, _, err := correlation(m)

	return corr, err
}
