// Package timeseries provides the core time-indexed series type and operations.
package timeseries

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series represents a single-column time series: an ordered mapping from
// timestamps to real-valued observations. Timestamps are unique and strictly
// increasing; every constructor enforces this invariant.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a series from values alone, assigning synthetic hourly
// timestamps. Useful when only the ordering of observations matters.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a series with explicit timestamps. The pairs are
// sorted ascending by timestamp; duplicate timestamps are rejected.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}

	ts := make([]time.Time, len(timestamps))
	vs := make([]float64, len(values))
	copy(ts, timestamps)
	copy(vs, values)

	idx := make([]int, len(ts))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return ts[idx[a]].Before(ts[idx[b]])
	})

	sortedTs := make([]time.Time, len(ts))
	sortedVs := make([]float64, len(vs))
	for i, j := range idx {
		sortedTs[i] = ts[j]
		sortedVs[i] = vs[j]
	}

	for i := 1; i < len(sortedTs); i++ {
		if !sortedTs[i].After(sortedTs[i-1]) {
			return nil, fmt.Errorf("duplicate timestamp %s", sortedTs[i].Format(time.RFC3339))
		}
	}

	return &Series{
		Timestamps: sortedTs,
		Values:     sortedVs,
	}, nil
}

// FromMap creates a series from a timestamp-keyed map, sorted ascending.
func FromMap(data map[time.Time]float64) *Series {
	timestamps := make([]time.Time, 0, len(data))
	for t := range data {
		timestamps = append(timestamps, t)
	}
	sort.Slice(timestamps, func(a, b int) bool {
		return timestamps[a].Before(timestamps[b])
	})

	values := make([]float64, len(timestamps))
	for i, t := range timestamps {
		values[i] = data[t]
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// Start returns the earliest timestamp. Zero time for an empty series.
func (s *Series) Start() time.Time {
	if len(s.Timestamps) == 0 {
		return time.Time{}
	}
	return s.Timestamps[0]
}

// End returns the latest timestamp. Zero time for an empty series.
func (s *Series) End() time.Time {
	if len(s.Timestamps) == 0 {
		return time.Time{}
	}
	return s.Timestamps[len(s.Timestamps)-1]
}

// At returns the value observed at timestamp t.
func (s *Series) At(t time.Time) (float64, bool) {
	i := sort.Search(len(s.Timestamps), func(j int) bool {
		return !s.Timestamps[j].Before(t)
	})
	if i < len(s.Timestamps) && s.Timestamps[i].Equal(t) {
		return s.Values[i], true
	}
	return 0, false
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// CountZeros returns the number of exact-zero observations. Near-zero values
// do not count; the check is deliberately exact.
func (s *Series) CountZeros() int {
	n := 0
	for _, v := range s.Values {
		if v == 0 {
			n++
		}
	}
	return n
}

// Diff calculates the first difference of the series.
func (s *Series) Diff() *Series {
	if len(s.Values) < 2 {
		return &Series{Values: []float64{}}
	}

	values := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		values[i-1] = s.Values[i] - s.Values[i-1]
	}

	timestamps := make([]time.Time, len(values))
	copy(timestamps, s.Timestamps[1:])

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name + "_diff",
	}
}

// Log applies the natural logarithm to every observation. Non-positive
// values map to NaN.
func (s *Series) Log() *Series {
	values := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if v > 0 {
			values[i] = math.Log(v)
		} else {
			values[i] = math.NaN()
		}
	}

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name + "_log",
	}
}

// Subsample keeps every q-th observation starting from the first.
func (s *Series) Subsample(q int) *Series {
	if q <= 1 {
		return s.Copy()
	}

	var timestamps []time.Time
	var values []float64
	for i := 0; i < len(s.Values); i += q {
		timestamps = append(timestamps, s.Timestamps[i])
		values = append(values, s.Values[i])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Scale returns a copy with every value multiplied by c.
func (s *Series) Scale(c float64) *Series {
	out := s.Copy()
	floats.Scale(c, out.Values)
	return out
}

// Truncate returns the first n observations.
func (s *Series) Truncate(n int) *Series {
	if n >= len(s.Values) {
		return s.Copy()
	}
	if n < 0 {
		n = 0
	}

	timestamps := make([]time.Time, n)
	values := make([]float64, n)
	copy(timestamps, s.Timestamps[:n])
	copy(values, s.Values[:n])

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}
