package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeSeries(start time.Time, n int, f func(i int) float64) *Series {
	ts := make([]time.Time, n)
	vs := make([]float64, n)
	for i := 0; i < n; i++ {
		ts[i] = start.AddDate(0, 0, i)
		vs[i] = f(i)
	}
	s, _ := NewWithTimestamps(ts, vs)
	return s
}

func TestIntersection(t *testing.T) {
	a := rangeSeries(day(2020, 1, 1), 10, func(i int) float64 { return float64(i) })
	b := rangeSeries(day(2020, 1, 7), 10, func(i int) float64 { return float64(i) })

	overlap := Intersection(a, b)
	require.Len(t, overlap, 4)
	assert.Equal(t, day(2020, 1, 7), overlap[0])
	assert.Equal(t, day(2020, 1, 10), overlap[3])
}

func TestIntersectionDisjoint(t *testing.T) {
	a := rangeSeries(day(2020, 1, 1), 5, func(i int) float64 { return 1 })
	b := rangeSeries(day(2021, 1, 1), 5, func(i int) float64 { return 1 })

	assert.Empty(t, Intersection(a, b))
}

func TestIntersectionIgnoresLocation(t *testing.T) {
	// Same instants expressed in different zones still align.
	a := rangeSeries(day(2020, 1, 1), 5, func(i int) float64 { return 1 })
	ts := make([]time.Time, 5)
	for i := range ts {
		ts[i] = day(2020, 1, 1+i).In(time.FixedZone("plus9", 9*3600))
	}
	b, err := NewWithTimestamps(ts, []float64{1, 1, 1, 1, 1})
	require.NoError(t, err)

	assert.Len(t, Intersection(a, b), 5)
}

func TestRestrictWithout(t *testing.T) {
	s := rangeSeries(day(2020, 1, 1), 6, func(i int) float64 { return float64(i) })
	keys := []time.Time{day(2020, 1, 2), day(2020, 1, 4)}

	in := s.Restrict(keys)
	assert.Equal(t, []float64{1, 3}, in.Values)

	out := s.Without(keys)
	assert.Equal(t, []float64{0, 2, 4, 5}, out.Values)
	assert.Equal(t, s.Len(), in.Len()+out.Len())
}

func TestMerge(t *testing.T) {
	a := rangeSeries(day(2020, 1, 5), 3, func(i int) float64 { return 10 })
	b := rangeSeries(day(2020, 1, 1), 3, func(i int) float64 { return 1 })

	m, err := Merge(a, b)
	require.NoError(t, err)
	require.Equal(t, 6, m.Len())
	assert.Equal(t, []float64{1, 1, 1, 10, 10, 10}, m.Values)
	for i := 1; i < m.Len(); i++ {
		assert.True(t, m.Timestamps[i].After(m.Timestamps[i-1]))
	}
}

func TestMergeRejectsDuplicateKeys(t *testing.T) {
	a := rangeSeries(day(2020, 1, 1), 3, func(i int) float64 { return 1 })
	b := rangeSeries(day(2020, 1, 3), 3, func(i int) float64 { return 2 })

	_, err := Merge(a, b)
	assert.Error(t, err)
}
