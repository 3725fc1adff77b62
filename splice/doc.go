// Package splice reconciles overlapping time-series segments.
//
// Two series covering different observation periods but sharing an overlap
// region are stitched into one continuous series by regressing one source on
// the other over the overlap and extending the target's scale through the
// fitted model. An ordered sequence of segments is folded the same way, one
// splice at a time.
//
// # Pairwise Reconciliation
//
// Knit two overlapping series:
//
//	res, err := splice.Knit(base, extension, splice.Forward, nil)
//	if err != nil {
//	    var overlapErr *splice.InsufficientOverlapError
//	    if errors.As(err, &overlapErr) {
//	        // fewer than MinOverlap shared timestamps
//	    }
//	}
//	fmt.Println(res.R2, res.InterceptRetained)
//
// In forward direction the base series keeps its observed scale and the
// extension is calibrated onto it; backward reverses the roles. In both
// directions the base must not start after the extension.
//
// The calibration is fit twice: first with an intercept, then, if the
// intercept is not statistically distinguishable from zero at the configured
// significance level, refit through the origin. Both fits' diagnostics are
// exposed on the Result.
//
// # Sequence Reconciliation
//
// Fold a sorted segment list:
//
//	chainer, err := splice.NewChainer(segments)
//	spliced, err := chainer.Knit(splice.Forward, nil)
//	summary := chainer.Summary() // per-step dates, R2, intercept flags
//
// Any step failure aborts the whole chain; no partial result or summary
// survives. With Normalize enabled (the default) the final series is rescaled
// so its maximum is 100.
//
// # Errors
//
// Precondition violations surface as typed errors: OrderingError,
// InsufficientOverlapError, DegenerateDataError. All are fail-fast; they
// indicate a problem with the caller's data, not a transient condition.
package splice
