// Package gosplice provides time-series splicing and random-walk testing.
//
// GoSplice stitches together overlapping time-series segments gathered from a
// source whose sampling window, resolution, or provider changes over the time
// axis, producing one continuous, consistently-scaled series. The overlap
// between adjacent segments calibrates a linear relationship between the two
// sources, with the regression intercept retained only when statistically
// significant. A hypothesis-testing layer checks whether the spliced series
// is consistent with a random-walk generating process.
//
// # Quick Start
//
// Splice two overlapping segments:
//
//	res, err := splice.Knit(base, extension, splice.Forward, nil)
//	// res.Series covers the union of both periods on base's scale
//
// Splice a full sequence of segments:
//
//	chainer, _ := splice.NewChainer(segments)
//	spliced, err := chainer.Knit(splice.Forward, nil)
//	for _, step := range chainer.Summary() {
//	    fmt.Printf("%s..%s r2=%.3f\n", step.StartDate, step.EndDate, step.R2)
//	}
//
// Test the result against the random-walk hypothesis:
//
//	tester, _ := stats.NewRandomWalkTester("variance-ratio")
//	result, err := tester.Test(spliced, 4, 0.05)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: time-indexed series type, index algebra, transforms
//   - splice: pairwise (Knit) and sequence-wide (Chain) reconciliation
//   - stats: random-walk hypothesis tests and forecast-accuracy comparison
//
// # References
//
//   - Lo, A.W., & MacKinlay, A.C. (1988). Stock Market Prices Do Not Follow
//     Random Walks: Evidence from a Simple Specification Test
//   - Diebold, F.X., & Mariano, R.S. (1995). Comparing Predictive Accuracy
package gosplice
