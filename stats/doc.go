// Package stats provides hypothesis tests for spliced time series.
//
// # Random-Walk Tests
//
// Test whether a price-like level series is consistent with a random walk:
//
//	// Lo-MacKinlay heteroskedasticity-robust variance ratio test
//	tester, err := stats.NewRandomWalkTester("variance-ratio")
//	res, err := tester.Test(series, 4, 0.05)
//	fmt.Printf("z=%.3f p=%.3f reject=%v\n", res.Statistic, res.PValue, res.RejectNull)
//
//	// Dispersion-equality F-test on differenced data
//	tester, err = stats.NewRandomWalkTester("normal")
//	res, err = tester.Test(series, 2, 0.05)
//
// The method is fixed at construction; an unrecognized name is a
// ConfigurationError. Each Test call is independent. The variance-ratio
// method truncates trailing observations when the sample count minus one is
// not divisible by q, recording a warning on the result.
//
// # Forecast Comparison
//
// Compare two predictors of the same target:
//
//	res, err := stats.DieboldMariano(target, pred1, pred2, 1, "MSE")
//	fmt.Println(res.Verdict)
package stats
