// Package timeseries provides the time-indexed series type and utilities.
//
// This package includes the Series type representing an ordered mapping from
// unique, strictly increasing timestamps to real-valued observations, along
// with the index algebra the splicing engine is built on.
//
// # Creating a Series
//
// From explicit timestamps:
//
//	series, err := timeseries.NewWithTimestamps(timestamps, values)
//
// From a map (sorted ascending automatically):
//
//	series := timeseries.FromMap(map[time.Time]float64{...})
//
// From values alone, with synthetic hourly timestamps:
//
//	series := timeseries.New(values)
//
// # Index Algebra
//
// Operate on timestamp sets at a splice boundary:
//
//	overlap := timeseries.Intersection(a, b)  // shared timestamps
//	inside := a.Restrict(overlap)             // observations on the overlap
//	outside := b.Without(overlap)             // observations beyond it
//	merged, err := timeseries.Merge(a, outside) // union, duplicate keys rejected
//
// # Statistics and Transforms
//
//	mean := series.Mean()
//	v := series.Variance()
//	diff := series.Diff()        // first difference
//	logged := series.Log()       // natural log
//	sub := series.Subsample(4)   // every 4th observation
//	scaled := series.Scale(0.5)
package timeseries
