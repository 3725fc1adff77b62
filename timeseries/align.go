package timeseries

import (
	"fmt"
	"sort"
	"time"
)

// Timestamps are compared by instant, so series built in different locations
// or with monotonic clock readings still align.
func key(t time.Time) int64 {
	return t.UnixNano()
}

// Intersection returns the timestamps present in both series, ascending.
func Intersection(a, b *Series) []time.Time {
	var out []time.Time
	i, j := 0, 0
	for i < len(a.Timestamps) && j < len(b.Timestamps) {
		ka, kb := key(a.Timestamps[i]), key(b.Timestamps[j])
		switch {
		case ka == kb:
			out = append(out, a.Timestamps[i])
			i++
			j++
		case ka < kb:
			i++
		default:
			j++
		}
	}
	return out
}

// Restrict returns the subset of the series observed at the given timestamps.
func (s *Series) Restrict(keys []time.Time) *Series {
	set := make(map[int64]bool, len(keys))
	for _, t := range keys {
		set[key(t)] = true
	}

	var timestamps []time.Time
	var values []float64
	for i, t := range s.Timestamps {
		if set[key(t)] {
			timestamps = append(timestamps, t)
			values = append(values, s.Values[i])
		}
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Without returns the subset of the series observed outside the given
// timestamps.
func (s *Series) Without(keys []time.Time) *Series {
	set := make(map[int64]bool, len(keys))
	for _, t := range keys {
		set[key(t)] = true
	}

	var timestamps []time.Time
	var values []float64
	for i, t := range s.Timestamps {
		if !set[key(t)] {
			timestamps = append(timestamps, t)
			values = append(values, s.Values[i])
		}
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Merge concatenates two series with disjoint timestamp sets and sorts the
// result ascending. A shared timestamp is an error: the merged series must
// keep exactly one value per timestamp.
func Merge(a, b *Series) (*Series, error) {
	n := a.Len() + b.Len()
	timestamps := make([]time.Time, 0, n)
	values := make([]float64, 0, n)
	timestamps = append(timestamps, a.Timestamps...)
	timestamps = append(timestamps, b.Timestamps...)
	values = append(values, a.Values...)
	values = append(values, b.Values...)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(x, y int) bool {
		return timestamps[idx[x]].Before(timestamps[idx[y]])
	})

	outTs := make([]time.Time, n)
	outVs := make([]float64, n)
	for i, j := range idx {
		outTs[i] = timestamps[j]
		outVs[i] = values[j]
	}

	for i := 1; i < n; i++ {
		if key(outTs[i]) == key(outTs[i-1]) {
			return nil, fmt.Errorf("merge: duplicate timestamp %s", outTs[i].Format(time.RFC3339))
		}
	}

	return &Series{
		Timestamps: outTs,
		Values:     outVs,
		Name:       a.Name,
	}, nil
}
