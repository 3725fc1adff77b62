package splice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosplice/timeseries"
)

// threeSegments builds overlapping daily segments of a shared latent series,
// each reported on its own scale.
func threeSegments(seed int64) []*timeseries.Series {
	rng := rand.New(rand.NewSource(seed))
	latent := make([]float64, 300)
	level := 50.0
	for i := range latent {
		level += rng.NormFloat64()
		latent[i] = level
	}

	cut := func(from, to int, scale float64) *timeseries.Series {
		vals := make([]float64, to-from)
		for i := range vals {
			vals[i] = scale * latent[from+i]
		}
		return dailySeries(day(2020, 1, 1).AddDate(0, 0, from), vals)
	}

	return []*timeseries.Series{
		cut(0, 120, 1.0),
		cut(80, 220, 0.2),
		cut(180, 300, 5.0),
	}
}

func TestChainForwardCoversUnion(t *testing.T) {
	segments := threeSegments(21)
	chainer, err := NewChainer(segments)
	require.NoError(t, err)

	out, err := chainer.Knit(Forward, &ChainOptions{Knit: DefaultKnitOptions(), Normalize: false})
	require.NoError(t, err)

	// Full union of the segment ranges, daily, no gaps and no duplicates.
	assert.Equal(t, 300, out.Len())
	assert.Equal(t, segments[0].Start(), out.Start())
	assert.Equal(t, segments[2].End(), out.End())
	for i := 1; i < out.Len(); i++ {
		assert.Equal(t, out.Timestamps[i-1].AddDate(0, 0, 1), out.Timestamps[i])
	}

	// Forward mode keeps the first segment's scale where it was observed.
	v, ok := out.At(segments[0].Start())
	require.True(t, ok)
	first, _ := segments[0].At(segments[0].Start())
	assert.Equal(t, first, v)

	summary := chainer.Summary()
	require.Len(t, summary, 2)
	assert.Equal(t, segments[1].Start(), summary[0].StartDate)
	assert.Equal(t, segments[0].End(), summary[0].EndDate)
	assert.Equal(t, segments[2].Start(), summary[1].StartDate)
	assert.Equal(t, segments[1].End(), summary[1].EndDate)
	for _, step := range summary {
		assert.Greater(t, step.R2, 0.99, "same latent series should calibrate almost perfectly")
	}
}

func TestChainBackwardKeepsLastScale(t *testing.T) {
	segments := threeSegments(22)
	chainer, err := NewChainer(segments)
	require.NoError(t, err)

	out, err := chainer.Knit(Backward, &ChainOptions{Knit: DefaultKnitOptions(), Normalize: false})
	require.NoError(t, err)

	assert.Equal(t, 300, out.Len())

	// Backward mode keeps the last segment's scale where it was observed.
	v, ok := out.At(segments[2].End())
	require.True(t, ok)
	last, _ := segments[2].At(segments[2].End())
	assert.Equal(t, last, v)

	summary := chainer.Summary()
	require.Len(t, summary, 2)
	// First backward step knits the middle segment onto the running result.
	assert.Equal(t, segments[2].Start(), summary[0].StartDate)
	assert.Equal(t, segments[1].End(), summary[0].EndDate)
}

func TestChainNormalization(t *testing.T) {
	segments := threeSegments(23)
	chainer, err := NewChainer(segments)
	require.NoError(t, err)

	out, err := chainer.Knit(Forward, nil)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, out.Max(), 1e-9)

	// Normalization is a fixed point: applying it again changes nothing.
	again := Normalize(out)
	assert.InDeltaSlice(t, out.Values, again.Values, 1e-9)
}

func TestChainAbortsWholly(t *testing.T) {
	segments := threeSegments(24)
	// Shrink the last segment so its overlap with the running result is too
	// small; the chain must fail at the second step.
	segments[2] = segments[2].Restrict(segments[2].Timestamps[35:])

	chainer, err := NewChainer(segments)
	require.NoError(t, err)

	out, err := chainer.Knit(Forward, nil)
	require.Error(t, err)
	assert.Nil(t, out)

	var ovErr *InsufficientOverlapError
	assert.ErrorAs(t, err, &ovErr)
	assert.Nil(t, chainer.Summary(), "no partial summary after a failed chain")
}

func TestChainRequiresTwoSegments(t *testing.T) {
	_, err := NewChainer([]*timeseries.Series{dailySeries(day(2020, 1, 1), []float64{1, 2})})
	assert.Error(t, err)
}

func TestChainerCopiesInput(t *testing.T) {
	segments := threeSegments(25)
	original := segments[0].Values[0]

	chainer, err := NewChainer(segments)
	require.NoError(t, err)

	segments[0].Values[0] = 1e9
	out, err := chainer.Knit(Forward, &ChainOptions{Knit: DefaultKnitOptions(), Normalize: false})
	require.NoError(t, err)

	v, _ := out.At(segments[0].Start())
	assert.Equal(t, original, v)
}
