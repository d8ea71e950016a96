package popmetrics_test

import (
	"testing"

	"github.com/camnca/engine/popmetrics"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CovarianceRequiresTwoSamples(t *testing.T) {
	t.Parallel()

	r := popmetrics.NewRecorder(100)
	_, err := r.Covariance()
	require.ErrorIs(t, err, popmetrics.ErrInsufficientSamples)

	r.Record(5)
	_, err = r.Covariance()
	require.ErrorIs(t, err, popmetrics.ErrInsufficientSamples)

	r.Record(8)
	cov, err := r.Covariance()
	require.NoError(t, err)
	require.Equal(t, 3, cov.Rows())
	require.Equal(t, 3, cov.Cols())
}

func TestRecorder_CorrelationRequiresTwoSamples(t *testing.T) {
	t.Parallel()

	r := popmetrics.NewRecorder(100)
	r.Record(5)
	_, err := r.Correlation()
	require.ErrorIs(t, err, popmetrics.ErrInsufficientSamples)
}

func TestRecorder_ConstantColumnYieldsZeroNotNaN(t *testing.T) {
	t.Parallel()

	r := popmetrics.NewRecorder(100)
	// Count never changes -> delta column is constant 0, count column is
	// constant too: both have zero variance.
	for i := 0; i < 5; i++ {
		r.Record(10)
	}

	corr, err := r.Correlation()
	require.NoError(t, err)

	for j := 0; j < corr.Cols(); j++ {
		v, err := corr.At(0, j)
		require.NoError(t, err)
		require.False(t, v != v, "correlation must not contain NaN at (0,%d)", j)
		require.Equal(t, 0.0, v)
	}
}

func TestRecorder_DensityTracksCount(t *testing.T) {
	t.Parallel()

	r := popmetrics.NewRecorder(200)
	r.Record(50)
	r.Record(100)

	cov, err := r.Covariance()
	require.NoError(t, err)
	countDensityCov, err := cov.At(0, 1)
	require.NoError(t, err)
	require.Greater(t, countDensityCov, 0.0)
}

func TestRecorder_LenTracksRecordedRows(t *testing.T) {
	t.Parallel()

	r := popmetrics.NewRecorder(10)
	require.Equal(t, 0, r.Len())
	r.Record(1)
	r.Record(2)
	require.Equal(t, 2, r.Len())
}
